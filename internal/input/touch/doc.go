// Package touch provides multi-touch tracking and gesture recognition.
//
// Tracker maintains the set of currently active touch points. Recognizer
// owns a Tracker, watches touch lifecycle events (down, move, up) and
// turns them into Gesture values: taps, long-presses and swipes are
// detected once on release, pinches are detected continuously while two
// touches remain down.
//
// # Usage
//
//	r := touch.NewRecognizer(touch.DefaultConfig())
//	r.TouchDown(0, device.Point{X: 100, Y: 100})
//	r.TouchMove(0, device.Point{X: 200, Y: 100})
//	r.TouchUp(0)
//	for _, g := range r.Gestures() {
//	    // g.Type == touch.Swipe
//	}
//
// Gestures returns and clears the accumulation buffer; gestures are
// value objects consumed by the frame that drained them.
//
// # Ordering
//
// Callers must deliver lifecycle events for a touch id in device order
// (down before move before up). Unknown ids on move/up are ignored; a
// reused id on down overwrites the prior entry. The device layer's
// ordering guarantees are deliberately not trusted further than that.
package touch
