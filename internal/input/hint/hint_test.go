package hint

import (
	"testing"
	"time"

	"github.com/kestrelgames/arcadecore/internal/input/device"
)

func TestHintShowHide(t *testing.T) {
	now := time.Now()
	h := New("press jump", device.Point{X: 100, Y: 200}, 0)

	if h.Visible(now) {
		t.Error("hint visible before Show")
	}
	h.Show(now)
	if !h.Visible(now.Add(time.Hour)) {
		t.Error("persistent hint expired")
	}
	h.Hide()
	if h.Visible(now) {
		t.Error("hint visible after Hide")
	}
}

func TestHintAutoExpire(t *testing.T) {
	now := time.Now()
	h := New("swipe to scroll", device.Point{X: 0, Y: 0}, 2*time.Second)
	h.Show(now)

	if !h.Visible(now.Add(time.Second)) {
		t.Error("hint hidden before duration elapsed")
	}
	if h.Visible(now.Add(2 * time.Second)) {
		t.Error("hint still visible at expiry")
	}
	// Expiry latches: the hint stays hidden even for earlier queries.
	if h.Visible(now) {
		t.Error("hint became visible again after expiry")
	}
}

func TestHintReshowRestartsTimer(t *testing.T) {
	now := time.Now()
	h := New("tap here", device.Point{X: 50, Y: 50}, time.Second)
	h.Show(now)
	if h.Visible(now.Add(2 * time.Second)) {
		t.Error("hint should have expired")
	}

	h.Show(now.Add(3 * time.Second))
	if !h.Visible(now.Add(3500 * time.Millisecond)) {
		t.Error("re-shown hint should be visible within new window")
	}
}
