package touch

import (
	"math"
	"sort"
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

// Config holds the recognizer's detection thresholds.
type Config struct {
	// TapMaxDuration is the longest press that can still be a tap.
	TapMaxDuration time.Duration

	// TapMaxDistance is the largest movement (px) for a tap or
	// long-press.
	TapMaxDistance float64

	// LongPressDuration is the shortest press that becomes a
	// long-press.
	LongPressDuration time.Duration

	// SwipeMinDistance is the shortest movement (px) for a swipe.
	SwipeMinDistance float64

	// SwipeMaxDuration is the longest press that can still be a swipe.
	SwipeMaxDuration time.Duration

	// PinchMinDistance is the smallest inter-touch distance change (px)
	// that registers as a pinch.
	PinchMinDistance float64

	// MoveEpsilon is the per-axis movement (px) a touch must make
	// before pinch detection engages.
	MoveEpsilon float64
}

// DefaultConfig returns the stock detection thresholds.
func DefaultConfig() Config {
	return Config{
		TapMaxDuration:    300 * time.Millisecond,
		TapMaxDistance:    10,
		LongPressDuration: 500 * time.Millisecond,
		SwipeMinDistance:  50,
		SwipeMaxDuration:  500 * time.Millisecond,
		PinchMinDistance:  20,
		MoveEpsilon:       5,
	}
}

// Recognizer consumes touch lifecycle events and detects gestures.
// It is driven synchronously by the per-frame event application; it is
// not safe for concurrent use.
type Recognizer struct {
	config  Config
	tracker *Tracker

	startPos map[device.TouchID]device.Point
	endPos   map[device.TouchID]device.Point

	// pending accumulates gestures detected since the last Gestures call.
	pending []Gesture

	now func() time.Time
}

// NewRecognizer creates a gesture recognizer with the given thresholds.
func NewRecognizer(config Config) *Recognizer {
	return &Recognizer{
		config:   config,
		tracker:  NewTracker(),
		startPos: make(map[device.TouchID]device.Point),
		endPos:   make(map[device.TouchID]device.Point),
		now:      time.Now,
	}
}

// Tracker returns the recognizer's touch tracker for position queries.
func (r *Recognizer) Tracker() *Tracker {
	return r.tracker
}

// TouchDown records a touch placement.
func (r *Recognizer) TouchDown(id device.TouchID, pos device.Point) {
	r.touchDownAt(id, pos, r.now())
}

// TouchDownAt records a touch placement with an explicit timestamp.
// A zero timestamp is stamped with the recognizer's clock.
func (r *Recognizer) TouchDownAt(id device.TouchID, pos device.Point, ts time.Time) {
	if ts.IsZero() {
		ts = r.now()
	}
	r.touchDownAt(id, pos, ts)
}

func (r *Recognizer) touchDownAt(id device.TouchID, pos device.Point, ts time.Time) {
	r.tracker.Down(id, pos, ts)
	r.startPos[id] = pos
	r.endPos[id] = pos
}

// TouchMove updates the position of an active touch.
func (r *Recognizer) TouchMove(id device.TouchID, pos device.Point) {
	r.tracker.Move(id, pos)
	if _, ok := r.endPos[id]; ok {
		r.endPos[id] = pos
	}
}

// TouchUp releases a touch and runs the release-time gesture tests.
func (r *Recognizer) TouchUp(id device.TouchID) {
	r.touchUpAt(id, r.now())
}

// TouchUpAt releases a touch with an explicit timestamp. A zero
// timestamp is stamped with the recognizer's clock.
func (r *Recognizer) TouchUpAt(id device.TouchID, ts time.Time) {
	if ts.IsZero() {
		ts = r.now()
	}
	r.touchUpAt(id, ts)
}

func (r *Recognizer) touchUpAt(id device.TouchID, ts time.Time) {
	if start, ok := r.startPos[id]; ok {
		end := r.endPos[id]
		var duration time.Duration
		if st, ok := r.tracker.StartTime(id); ok {
			duration = ts.Sub(st)
		}

		if g, ok := r.detectRelease(start, end, duration); ok {
			g.Touch = id
			r.pending = append(r.pending, g)
		}
	}

	r.tracker.Up(id)
	delete(r.startPos, id)
	delete(r.endPos, id)
}

// detectRelease runs the release-time gesture tests in priority order:
// tap, then long-press, then swipe. Tap wins ties.
func (r *Recognizer) detectRelease(start, end device.Point, duration time.Duration) (Gesture, bool) {
	distance := start.Distance(end)

	if duration <= r.config.TapMaxDuration && distance < r.config.TapMaxDistance {
		return Gesture{
			Type:     Tap,
			Position: start,
			Start:    start,
			End:      end,
			Distance: distance,
			Duration: duration,
		}, true
	}

	if duration >= r.config.LongPressDuration && distance < r.config.TapMaxDistance {
		return Gesture{
			Type:     LongPress,
			Position: start,
			Start:    start,
			End:      end,
			Distance: distance,
			Duration: duration,
		}, true
	}

	if duration < r.config.SwipeMaxDuration && distance >= r.config.SwipeMinDistance {
		return Gesture{
			Type:      Swipe,
			Position:  start,
			Start:     start,
			End:       end,
			Distance:  distance,
			Direction: end.Sub(start).Normalize(),
			Duration:  duration,
		}, true
	}

	return Gesture{}, false
}

// Gestures returns the gestures recognized since the last call and
// clears the buffer. Pinch detection between concurrently held touches
// runs here and re-fires while the touches remain down.
func (r *Recognizer) Gestures() []Gesture {
	gestures := r.pending
	r.pending = nil

	if g, ok := r.detectPinch(); ok {
		gestures = append(gestures, g)
	}

	return gestures
}

// detectPinch compares the inter-touch distance of the two lowest
// active touch ids at their start positions against their current
// positions. The pinch fires on magnitude of change only; callers that
// need open-vs-close directionality must derive it themselves.
func (r *Recognizer) detectPinch() (Gesture, bool) {
	touches := r.tracker.All()
	if len(touches) < 2 {
		return Gesture{}, false
	}

	ids := make([]device.TouchID, 0, len(touches))
	for id := range touches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	first, second := ids[0], ids[1]
	pos1, pos2 := touches[first], touches[second]
	start1, ok1 := r.startPos[first]
	if !ok1 {
		start1 = pos1
	}
	start2, ok2 := r.startPos[second]
	if !ok2 {
		start2 = pos2
	}

	if !r.moved(pos1, start1) && !r.moved(pos2, start2) {
		return Gesture{}, false
	}

	initial := start1.Distance(start2)
	final := pos1.Distance(pos2)
	change := math.Abs(final - initial)
	if change < r.config.PinchMinDistance {
		return Gesture{}, false
	}

	center := pos1.Midpoint(pos2)
	return Gesture{
		Type:     Pinch,
		Position: center,
		Start:    start1.Midpoint(start2),
		End:      center,
		Distance: change,
	}, true
}

// moved reports whether a touch has left its start position by more
// than MoveEpsilon on either axis.
func (r *Recognizer) moved(pos, start device.Point) bool {
	return math.Abs(pos.X-start.X) > r.config.MoveEpsilon ||
		math.Abs(pos.Y-start.Y) > r.config.MoveEpsilon
}
