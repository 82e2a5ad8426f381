package control

import "testing"

func TestButtonIgnoresActivationWhileDisabled(t *testing.T) {
	b := NewButton("Confirm")
	calls := 0
	b.OnActivate(func() { calls++ })

	if b.Activate() {
		t.Error("expected disabled button to reject activation")
	}
	if calls != 0 {
		t.Errorf("expected 0 calls, got %d", calls)
	}

	b.SetEnabled(true)
	if !b.Activate() {
		t.Error("expected enabled button to activate")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestButtonRemoveListener(t *testing.T) {
	b := NewButton("Confirm")
	b.SetEnabled(true)

	var order []string
	removeA := b.OnActivate(func() { order = append(order, "a") })
	b.OnActivate(func() { order = append(order, "b") })

	b.Activate()
	removeA()
	b.Activate()

	want := []string{"a", "b", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %v, got %v", want, order)
			break
		}
	}
	if b.ListenerCount() != 1 {
		t.Errorf("expected 1 listener left, got %d", b.ListenerCount())
	}
}

func TestButtonListenerMayDisable(t *testing.T) {
	b := NewButton("Confirm")
	b.SetEnabled(true)
	b.OnActivate(func() { b.SetEnabled(false) })

	b.Activate()
	if b.Enabled() {
		t.Error("listener should be able to disable the button")
	}
	if b.Activate() {
		t.Error("second activation should be ignored")
	}
}
