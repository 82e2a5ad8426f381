//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/sketchcoach/sketchcoach/internal/control"
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
	"github.com/sketchcoach/sketchcoach/internal/pointer"
)

var (
	eng     *engine.Engine
	prompt  *dialog.Prompt
	confirm *control.Button
	button  pointer.Button
	screen  *pointer.ScreenSource
)

func main() {
	if err := setup(engine.DefaultConfig()); err != nil {
		panic(err)
	}

	// Create the engine API object
	sketchEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	sketchEngine.Set("configure", js.FuncOf(configure))
	sketchEngine.Set("pointer", js.FuncOf(pointerInput))
	sketchEngine.Set("pointerScreen", js.FuncOf(pointerScreen))
	sketchEngine.Set("setViewport", js.FuncOf(setViewport))
	sketchEngine.Set("confirm", js.FuncOf(confirmStage))
	sketchEngine.Set("armDraw", js.FuncOf(armDraw))
	sketchEngine.Set("submitDimension", js.FuncOf(submitDimension))
	sketchEngine.Set("cancelDimension", js.FuncOf(cancelDimension))
	sketchEngine.Set("reset", js.FuncOf(reset))
	sketchEngine.Set("onEvent", js.FuncOf(onEvent))

	// --- Queries (frontend ← backend) ---
	sketchEngine.Set("render", js.FuncOf(render))
	sketchEngine.Set("hitTest", js.FuncOf(hitTest))
	sketchEngine.Set("getState", js.FuncOf(getState))
	sketchEngine.Set("getStage", js.FuncOf(getStage))
	sketchEngine.Set("getDialog", js.FuncOf(getDialog))
	sketchEngine.Set("isConfirmEnabled", js.FuncOf(isConfirmEnabled))

	js.Global().Set("sketchEngine", sketchEngine)

	// Signal that WASM is ready
	js.Global().Set("sketchWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func setup(cfg engine.Config) error {
	p := dialog.NewPrompt()
	c := control.NewButton("Dimensions")
	e, err := engine.New(cfg, p, c)
	if err != nil {
		return err
	}
	if eng != nil {
		eng.Close()
	}
	eng, prompt, confirm = e, p, c
	button = pointer.Button{}
	screen = pointer.NewScreenSource(pointer.Viewport{PixelsPerUnit: 1})
	return nil
}

func errorResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Command Handlers ---

// configure replaces the engine with one built from a JSON engine.Config.
// Fields left out keep their defaults.
func configure(this js.Value, args []js.Value) interface{} {
	cfg := engine.DefaultConfig()
	if len(args) > 0 && args[0].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[0].String()), &cfg); err != nil {
			return errorResult(err)
		}
	}
	if err := setup(cfg); err != nil {
		return errorResult(err)
	}
	return okResult()
}

// pointer(x, y, down) ticks the engine with a canvas-local sample. Pass null
// coordinates when the pointer is off the canvas.
func pointerInput(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	down := args[2].Bool()
	pressed, released := button.Update(down)
	s := pointer.Sample{Pressed: pressed, Held: down, Released: released}
	if args[0].Type() == js.TypeNumber && args[1].Type() == js.TypeNumber {
		s = s.At(geometry.V(args[0].Float(), args[1].Float()))
	}
	eng.Tick(s)
	return nil
}

// pointerScreen(x, y, down) ticks the engine with a screen-space sample
// mapped through the viewport.
func pointerScreen(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	screen.Feed(args[0].Float(), args[1].Float(), args[2].Bool())
	eng.Tick(screen.Poll())
	return nil
}

func setViewport(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	screen.SetViewport(pointer.Viewport{
		CenterX:       args[0].Float(),
		CenterY:       args[1].Float(),
		PixelsPerUnit: args[2].Float(),
	})
	return nil
}

func confirmStage(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(confirm.Activate())
}

func armDraw(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	return js.ValueOf(eng.ArmDraw(document.ShapeKind(args[0].String())))
}

func submitDimension(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing dimension text"})
	}
	if err := prompt.Submit(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func cancelDimension(this js.Value, args []js.Value) interface{} {
	if err := prompt.Cancel(); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func reset(this js.Value, args []js.Value) interface{} {
	eng.Reset()
	return nil
}

// onEvent(fn) calls fn with each engine event as a JSON string and returns a
// function that removes the listener.
func onEvent(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	callback := args[0]
	unsubscribe := eng.Subscribe(func(ev engine.Event) {
		data, err := json.Marshal(ev)
		if err != nil {
			return
		}
		callback.Invoke(string(data))
	})

	var remove js.Func
	remove = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		unsubscribe()
		remove.Release()
		return nil
	})
	return remove
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getState(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.Snapshot())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getStage(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Stage().String())
}

func getDialog(this js.Value, args []js.Value) interface{} {
	req, ok := prompt.Current()
	if !ok {
		return js.Null()
	}
	data, err := json.Marshal(req)
	if err != nil {
		return js.Null()
	}
	return js.ValueOf(string(data))
}

func isConfirmEnabled(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(confirm.Enabled())
}
