// Package input maps physical input events to the per-frame state of
// user-defined actions.
//
// An application declares its actions and, for each one, a list of
// bindings. A binding is a chord: every code in it must be active at once
// (AND). Any binding of an action can activate it (OR). The value of a
// binding is the product of its slot values, so one member of a chord can
// carry an analog magnitude while the others gate it; the value of an action
// is the sum over its bindings and may exceed 1.
//
// # Architecture
//
//   - code: the identity of a physical input, scoped to one device or gamepad
//     or to any of them
//   - table: the reverse index from a code to every binding slot it feeds
//   - Map: the update engine, the frame lifecycle and the queries
//
// # Updates
//
// Every event is routed through the reverse index, so its cost depends only
// on the bindings that reference the changed code. Events from a known
// device go through Update, which applies both the concrete code and its
// wildcard form. Adapters split signed motion, scroll and axis values into
// two nonnegative codes before applying them.
//
// An action is pressing while its value is at or above the press
// sensitivity. Pressed and released are raised by the transitions and stay
// raised until the next BeginFrame, so a press and a release within one tick
// are both observed.
//
// # Usage
//
//	m, err := input.New([]input.Binds[string]{
//	    {Action: "jump", Bindings: [][]code.Code{
//	        {code.KeyCode(code.KeySpace)},
//	        {code.PadCode(code.South)},
//	    }},
//	    {Action: "dash", Bindings: [][]code.Code{
//	        {code.KeyCode(code.KeyLeftShift), code.KeyCode(code.KeyW)},
//	    }},
//	})
//
//	for {
//	    // feed events from the platform adapter
//	    m.Update(code.KeyCode(code.KeySpace).WithDevice(kb), 1)
//
//	    if m.Pressed("jump") {
//	        player.Jump()
//	    }
//	    m.BeginFrame()
//	}
//
// A Map is not safe for concurrent use; all calls must come from the goroutine
// that owns the event loop.
package input
