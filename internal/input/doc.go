// Package input aggregates raw device events into per-frame derived
// state: logical action booleans, conditioned analog values, recognized
// gestures, and combo/sequence completion flags.
//
// The Aggregator is driven once per frame by the external game loop.
// Within a frame it applies every raw event in device-reported order
// before deriving any state, because combo and sequence matchers are
// press-order sensitive and the gesture recognizer needs touch
// lifecycle order preserved. All results are exposed by polling the
// returned Frame; there are no callbacks.
package input
