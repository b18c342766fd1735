package device

import "math"

// Key identifies a keyboard key by its normalized code.
type Key int

// Button identifies a gamepad button by index.
type Button int

// Axis identifies a gamepad analog axis by index.
type Axis int

// GamepadID identifies a connected gamepad.
type GamepadID int

// TouchID identifies an active touch point. IDs are unique only while
// the touch is held down; the device layer may reuse them afterwards.
type TouchID int

// Point is a position in screen space.
type Point struct {
	X float64
	Y float64
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Normalize returns the unit vector in the direction of p.
// Returns the zero point if p has zero length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}
