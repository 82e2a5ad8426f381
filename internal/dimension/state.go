package dimension

// RectangleState records up to two entered side lengths. Order does not matter;
// a third entry evicts the oldest.
type RectangleState struct {
	slots [2]*float64
}

// Record stores v, shifting out the oldest value when both slots are full.
func (s *RectangleState) Record(v float64) {
	switch {
	case s.slots[0] == nil:
		s.slots[0] = &v
	case s.slots[1] == nil:
		s.slots[1] = &v
	default:
		s.slots[0] = s.slots[1]
		s.slots[1] = &v
	}
}

// Values returns the recorded values, oldest first.
func (s *RectangleState) Values() []float64 {
	var out []float64
	for _, v := range s.slots {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Complete reports whether both slots hold a value.
func (s *RectangleState) Complete() bool {
	return s.slots[0] != nil && s.slots[1] != nil
}

// Matches reports whether both slots are filled and equal the target pair.
func (s *RectangleState) Matches(t Target) bool {
	if !s.Complete() {
		return false
	}
	return RectangleMatches(*s.slots[0], *s.slots[1], t.RectA, t.RectB, t.Epsilon)
}

// Reset clears both slots.
func (s *RectangleState) Reset() {
	s.slots = [2]*float64{}
}

// CircleState records the entered diameter.
type CircleState struct {
	value *float64
}

// Record stores v as the diameter.
func (s *CircleState) Record(v float64) {
	s.value = &v
}

// Value returns the recorded diameter, if any.
func (s *CircleState) Value() (float64, bool) {
	if s.value == nil {
		return 0, false
	}
	return *s.value, true
}

// Matches reports whether a diameter was entered and equals the target.
func (s *CircleState) Matches(t Target) bool {
	v, ok := s.Value()
	return ok && CircleMatches(v, t.Diameter, t.Epsilon)
}

// Reset clears the recorded diameter.
func (s *CircleState) Reset() {
	s.value = nil
}
