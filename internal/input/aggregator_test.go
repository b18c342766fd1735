package input

import (
	"math"
	"testing"
	"time"

	"github.com/kestrelgames/arcadecore/internal/config"
	"github.com/kestrelgames/arcadecore/internal/input/device"
	"github.com/kestrelgames/arcadecore/internal/input/record"
	"github.com/kestrelgames/arcadecore/internal/input/remap"
	"github.com/kestrelgames/arcadecore/internal/input/touch"
)

const keySpace = device.Key(32)

// newTestAggregator returns an aggregator with a controllable clock.
func newTestAggregator() (*Aggregator, *time.Time) {
	registry := remap.NewRegistry()
	agg := NewAggregator(registry, config.Default())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return now }
	return agg, &now
}

func TestActionPressLifecycle(t *testing.T) {
	agg, _ := newTestAggregator()
	agg.Registry().Active().Table.MapKey(keySpace, "JUMP")

	// Frame 1: space goes down.
	frame := agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	if !frame.JustPressed("JUMP") {
		t.Error("frame 1: JustPressed(JUMP) = false, want true")
	}
	if !frame.Pressed("JUMP") {
		t.Error("frame 1: Pressed(JUMP) = false, want true")
	}

	// Frame 2: no new events, space still held.
	frame = agg.Update(nil)
	if frame.JustPressed("JUMP") {
		t.Error("frame 2: JustPressed(JUMP) = true, want false")
	}
	if !frame.Pressed("JUMP") {
		t.Error("frame 2: Pressed(JUMP) = false, want true")
	}

	// Frame 3: space goes up.
	frame = agg.Update([]device.Event{device.NewKeyUp(keySpace)})
	if frame.Pressed("JUMP") {
		t.Error("frame 3: Pressed(JUMP) = true, want false")
	}
}

func TestUnboundKeyResolvesNothing(t *testing.T) {
	agg, _ := newTestAggregator()

	frame := agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	if len(frame.Actions) != 0 {
		t.Errorf("Actions = %v, want empty for unbound key", frame.Actions)
	}
}

func TestRepeatedKeyDownIsIgnored(t *testing.T) {
	agg, _ := newTestAggregator()
	agg.Registry().Active().Table.MapKey(keySpace, "JUMP")

	agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	frame := agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	if frame.JustPressed("JUMP") {
		t.Error("auto-repeat down should not re-trigger JustPressed")
	}
	if !frame.Pressed("JUMP") {
		t.Error("Pressed(JUMP) = false, want true")
	}
}

func TestButtonActions(t *testing.T) {
	agg, _ := newTestAggregator()
	profile := agg.Registry().Active()
	profile.Table.MapButton(0, "fire")
	profile.Gamepad(1).MapButton(3, "boost")

	frame := agg.Update([]device.Event{
		device.NewButtonDown(0, 0),
		device.NewButtonDown(1, 3),
	})
	if !frame.JustPressed("fire") || !frame.Pressed("fire") {
		t.Errorf("fire = %+v, want pressed and just pressed", frame.Action("fire"))
	}
	if !frame.JustPressed("boost") {
		t.Errorf("boost = %+v, want just pressed via gamepad binding", frame.Action("boost"))
	}

	frame = agg.Update([]device.Event{device.NewButtonUp(0, 0)})
	if frame.Pressed("fire") {
		t.Error("fire still pressed after button up")
	}
}

func TestAnalogConditioning(t *testing.T) {
	agg, _ := newTestAggregator()
	profile := agg.Registry().Active()
	profile.Table.MapAxis(0, "move_x")
	profile.Gamepad(0).SetDeadzone(0, 0.2)

	// Inside the deadzone: conditioned to zero.
	frame := agg.Update([]device.Event{device.NewAxisMotion(0, 0, 0.1)})
	if frame.Analog["move_x"] != 0 {
		t.Errorf("Analog[move_x] = %v, want 0 inside deadzone", frame.Analog["move_x"])
	}

	// Full deflection maps to 1.
	frame = agg.Update([]device.Event{device.NewAxisMotion(0, 0, 1.0)})
	if math.Abs(frame.Analog["move_x"]-1) > 1e-9 {
		t.Errorf("Analog[move_x] = %v, want 1", frame.Analog["move_x"])
	}

	// Values persist across frames without new samples.
	frame = agg.Update(nil)
	if math.Abs(frame.Analog["move_x"]-1) > 1e-9 {
		t.Errorf("Analog[move_x] = %v, want persisted 1", frame.Analog["move_x"])
	}

	// Out-of-range samples clamp before conditioning.
	frame = agg.Update([]device.Event{device.NewAxisMotion(0, 0, 1.7)})
	if frame.Analog["move_x"] > 1 {
		t.Errorf("Analog[move_x] = %v, want clamped to at most 1", frame.Analog["move_x"])
	}
}

func TestTuningDefaultDeadzoneReachesConditioning(t *testing.T) {
	registry := remap.NewRegistry()
	tuning := config.Default()
	tuning.Gamepad.DefaultDeadzone = 0.5
	agg := NewAggregator(registry, tuning)
	agg.Registry().Active().Table.MapAxis(0, "move_x")

	// A sample inside the tuned deadzone conditions to zero even though
	// no per-axis deadzone was set.
	frame := agg.Update([]device.Event{device.NewAxisMotion(0, 0, 0.3)})
	if got := frame.Analog["move_x"]; got != 0 {
		t.Errorf("Analog[move_x] = %v, want 0 inside tuned default deadzone", got)
	}

	// The tuned default also seeds profiles activated later.
	p := registry.Create("arcade")
	p.Table.MapAxis(0, "move_x")
	if err := agg.ApplyProfile("arcade"); err != nil {
		t.Fatalf("ApplyProfile() error: %v", err)
	}
	frame = agg.Update([]device.Event{device.NewAxisMotion(0, 0, 0.3)})
	if got := frame.Analog["move_x"]; got != 0 {
		t.Errorf("Analog[move_x] = %v, want 0 after profile switch", got)
	}
}

func TestSwipeGestureEndToEnd(t *testing.T) {
	agg, now := newTestAggregator()
	start := *now

	frame := agg.Update([]device.Event{
		device.NewTouchDown(0, device.Point{X: 100, Y: 100}).At(start),
		device.NewTouchMove(0, device.Point{X: 200, Y: 100}),
		device.NewTouchUp(0).At(start.Add(200 * time.Millisecond)),
	})

	if len(frame.Gestures) != 1 {
		t.Fatalf("Gestures = %v, want exactly one swipe", frame.Gestures)
	}
	g := frame.Gestures[0]
	if g.Type != touch.Swipe {
		t.Fatalf("gesture type = %v, want swipe", g.Type)
	}
	if math.Abs(g.Distance-100) > 1e-9 {
		t.Errorf("distance = %v, want 100", g.Distance)
	}
	if math.Abs(g.Direction.X-1) > 1e-9 || math.Abs(g.Direction.Y) > 1e-9 {
		t.Errorf("direction = %+v, want (1, 0)", g.Direction)
	}
}

func TestRegionTapAction(t *testing.T) {
	agg, now := newTestAggregator()
	profile := agg.Registry().Active()
	profile.Regions["pause"] = remap.Region{X: 0, Y: 0, W: 64, H: 64}

	start := *now
	frame := agg.Update([]device.Event{
		device.NewTouchDown(0, device.Point{X: 30, Y: 30}).At(start),
		device.NewTouchUp(0).At(start.Add(100 * time.Millisecond)),
	})
	if !frame.JustPressed("pause") {
		t.Error("tap inside region should just-press its action")
	}

	// A tap outside the region does not trigger it.
	frame = agg.Update([]device.Event{
		device.NewTouchDown(0, device.Point{X: 300, Y: 300}).At(start),
		device.NewTouchUp(0).At(start.Add(100 * time.Millisecond)),
	})
	if frame.JustPressed("pause") {
		t.Error("tap outside region should not trigger its action")
	}
}

func TestComboThroughAggregator(t *testing.T) {
	agg, now := newTestAggregator()
	agg.RegisterCombo("block", []device.Key{100, 102}, 500*time.Millisecond)

	frame := agg.Update([]device.Event{device.NewKeyDown(100)})
	if frame.Combos["block"] {
		t.Error("combo satisfied with one key held")
	}

	*now = now.Add(100 * time.Millisecond)
	frame = agg.Update([]device.Event{device.NewKeyDown(102)})
	if !frame.Combos["block"] {
		t.Error("combo not satisfied with both keys pressed 100ms apart")
	}
}

func TestSequenceThroughAggregator(t *testing.T) {
	agg, now := newTestAggregator()
	agg.RegisterSequence("hadouken", []device.Key{115, 100, 102}, time.Second)

	for i, k := range []device.Key{115, 100, 102} {
		*now = now.Add(200 * time.Millisecond)
		frame := agg.Update([]device.Event{device.NewKeyDown(k), device.NewKeyUp(k)})
		completed := frame.Sequences["hadouken"]
		if want := i == 2; completed != want {
			t.Errorf("after key %d: completed = %v, want %v", k, completed, want)
		}
	}

	// Completion latches until reset.
	frame := agg.Update(nil)
	if !frame.Sequences["hadouken"] {
		t.Error("sequence completion should latch across frames")
	}
	agg.ResetSequence("hadouken")
	frame = agg.Update(nil)
	if frame.Sequences["hadouken"] {
		t.Error("sequence still completed after reset")
	}
}

func TestApplyProfileBuildsMatchers(t *testing.T) {
	agg, now := newTestAggregator()
	p := agg.Registry().Create("arcade")
	p.Combos["block"] = remap.Def{Keys: []device.Key{100, 102}, MaxTimeMS: 500}
	p.Sequences["dash"] = remap.Def{Keys: []device.Key{100, 100}, MaxTimeMS: 300}

	if err := agg.ApplyProfile("arcade"); err != nil {
		t.Fatalf("ApplyProfile() error: %v", err)
	}

	frame := agg.Update([]device.Event{device.NewKeyDown(100), device.NewKeyDown(102)})
	if !frame.Combos["block"] {
		t.Error("profile combo not satisfied")
	}

	*now = now.Add(100 * time.Millisecond)
	agg.Update([]device.Event{device.NewKeyUp(100), device.NewKeyUp(102)})
	*now = now.Add(100 * time.Millisecond)
	agg.Update([]device.Event{device.NewKeyDown(100), device.NewKeyUp(100)})
	*now = now.Add(100 * time.Millisecond)
	frame = agg.Update([]device.Event{device.NewKeyDown(100)})
	if !frame.Sequences["dash"] {
		t.Error("profile sequence not completed")
	}

	if err := agg.ApplyProfile("missing"); err == nil {
		t.Error("ApplyProfile of unregistered profile should fail")
	}
	// Failed apply keeps the previous matchers.
	if agg.Registry().ActiveName() != "arcade" {
		t.Errorf("active profile = %q after failed apply, want arcade", agg.Registry().ActiveName())
	}
}

func TestAggregatorFeedsRecorder(t *testing.T) {
	agg, _ := newTestAggregator()
	rec := record.NewRecorder()
	agg.AttachRecorder(rec)

	rec.Start()
	agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	agg.Update([]device.Event{device.NewKeyUp(keySpace)})
	rec.Stop()

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events))
	}
	if events[0].Kind != record.Press || events[0].Key != keySpace {
		t.Errorf("event 0 = %+v, want press of space", events[0])
	}
	if events[1].Kind != record.Release || events[1].Key != keySpace {
		t.Errorf("event 1 = %+v, want release of space", events[1])
	}

	// Detached recorder receives nothing.
	agg.AttachRecorder(nil)
	rec.Start()
	agg.Update([]device.Event{device.NewKeyDown(keySpace)})
	if rec.Len() != 0 {
		t.Errorf("detached recorder captured %d events", rec.Len())
	}
}
