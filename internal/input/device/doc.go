// Package device defines the raw input vocabulary shared by the input
// subsystem.
//
// An external polling layer is expected to normalize platform events into
// the types declared here: integer key codes, gamepad button and axis
// indices, touch point identifiers, and 2D positions. The input packages
// never talk to hardware directly; they consume batches of device.Event
// values once per frame.
//
// # Events
//
// Event is a tagged struct covering the six raw transitions the core
// understands:
//
//	device.NewKeyDown(32)
//	device.NewTouchDown(0, device.Point{X: 100, Y: 100})
//	device.NewAxisMotion(0, 1, -0.42)
//
// An Event carries an optional Timestamp. A zero timestamp means "stamp
// me at ingestion"; consumers substitute their own clock, which keeps
// synthetic events in tests trivially constructible.
package device
