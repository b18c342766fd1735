// Package main is a diagnostic harness for the input core: it captures
// live terminal keys, replays persisted recordings, or validates
// profile documents.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/kestrelgames/arcadecore/internal/config"
	"github.com/kestrelgames/arcadecore/internal/input"
	"github.com/kestrelgames/arcadecore/internal/input/device"
	"github.com/kestrelgames/arcadecore/internal/input/record"
	"github.com/kestrelgames/arcadecore/internal/input/remap"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		profilePath string
		replayPath  string
		tuningPath  string
		recordPath  string
		logLevel    string
	)
	flag.StringVar(&profilePath, "profile", "", "Profile document to load (validated, then used for resolution)")
	flag.StringVar(&replayPath, "replay", "", "Recording file to replay through the aggregator")
	flag.StringVar(&tuningPath, "tuning", "", "TOML tuning file (defaults apply when absent)")
	flag.StringVar(&recordPath, "record", "", "Write captured keys to this recording file on exit")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputtap - input core diagnostic harness\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputtap [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inputtap                         Capture terminal keys live\n")
		fmt.Fprintf(os.Stderr, "  inputtap -profile arcade.json    Validate and use a profile\n")
		fmt.Fprintf(os.Stderr, "  inputtap -replay session.json    Replay a recording\n")
	}
	flag.Parse()

	log := golog.New().Child("[inputtap]")
	log.SetLevel(logLevel)

	tuning, err := config.Load(tuningPath)
	if err != nil {
		log.Errorf("loading tuning: %v", err)
		return 1
	}

	registry := remap.NewRegistry()
	if profilePath != "" {
		p, err := remap.LoadProfile(profilePath)
		if err != nil {
			log.Errorf("loading profile: %v", err)
			return 1
		}
		if err := registry.Register(p); err != nil {
			log.Errorf("registering profile: %v", err)
			return 1
		}
		if err := registry.SetActive(p.Name); err != nil {
			log.Errorf("activating profile: %v", err)
			return 1
		}
		log.Infof("profile %q loaded with %d key bindings", p.Name, len(p.Table.Keys()))
	}

	agg := input.NewAggregator(registry, tuning)
	if profilePath != "" {
		if err := agg.ApplyProfile(registry.ActiveName()); err != nil {
			log.Errorf("applying profile: %v", err)
			return 1
		}
	}

	if replayPath != "" {
		return replay(agg, replayPath, log)
	}
	return capture(agg, recordPath, log)
}

// replay plays a persisted recording through the aggregator at 60
// frames per second, printing each frame that resolves anything.
func replay(agg *input.Aggregator, path string, log *golog.Logger) int {
	rec := record.NewRecorder()
	if err := record.Load(rec, path); err != nil {
		log.Errorf("loading recording: %v", err)
		return 1
	}
	events := rec.Events()
	log.Infof("replaying %d events from %s", len(events), path)

	player := record.NewReplayer(events)
	player.Start()
	frameNum := 0
	for player.Playing() {
		batch := make([]device.Event, 0, 4)
		for _, ev := range player.Update() {
			switch ev.Kind {
			case record.Press:
				batch = append(batch, device.NewKeyDown(ev.Key))
			case record.Release:
				batch = append(batch, device.NewKeyUp(ev.Key))
			}
		}
		frame := agg.Update(batch)
		printFrame(frameNum, frame)
		frameNum++
		time.Sleep(time.Second / 60)
	}
	log.Infof("replay finished after %d frames", frameNum)
	return 0
}

// printFrame writes one line per interesting frame to stdout.
func printFrame(n int, frame input.Frame) {
	if len(frame.Actions) == 0 && len(frame.Gestures) == 0 {
		return
	}
	names := make([]string, 0, len(frame.Actions))
	for name := range frame.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := frame.Actions[name]
		fmt.Printf("frame %d: %s pressed=%v just=%v\n", n, name, st.Pressed, st.JustPressed)
	}
	for _, g := range frame.Gestures {
		fmt.Printf("frame %d: gesture %s\n", n, g.Type)
	}
}

// capture reads terminal keys via tcell and feeds them through the
// aggregator, showing resolved actions. Esc exits.
func capture(agg *input.Aggregator, recordPath string, log *golog.Logger) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Errorf("creating screen: %v", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Errorf("initializing screen: %v", err)
		return 1
	}
	defer screen.Fini()

	rec := record.NewRecorder()
	agg.AttachRecorder(rec)
	rec.Start()

	style := tcell.StyleDefault
	drawLine(screen, 0, "inputtap: press keys to see resolved actions, Esc to quit", style)
	screen.Show()

	for {
		ev := screen.PollEvent()
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if keyEv.Key() == tcell.KeyEscape {
			break
		}
		code := keyCode(keyEv)

		// Terminals report presses only, so synthesize the release in
		// the same frame.
		frame := agg.Update([]device.Event{
			device.NewKeyDown(code),
			device.NewKeyUp(code),
		})

		line := fmt.Sprintf("key %d -> %s", code, actionSummary(frame))
		drawLine(screen, 1, line, style)
		screen.Show()
	}

	rec.Stop()
	agg.AttachRecorder(nil)
	if recordPath != "" && rec.Len() > 0 {
		if err := record.Save(rec, recordPath); err != nil {
			log.Errorf("saving recording: %v", err)
			return 1
		}
		log.Infof("saved %d events to %s", rec.Len(), recordPath)
	}
	return 0
}

func keyCode(ev *tcell.EventKey) device.Key {
	if ev.Key() == tcell.KeyRune {
		return device.Key(ev.Rune())
	}
	return device.Key(ev.Key())
}

func actionSummary(frame input.Frame) string {
	if len(frame.Actions) == 0 {
		return "(unbound)"
	}
	names := make([]string, 0, len(frame.Actions))
	for name := range frame.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func drawLine(screen tcell.Screen, row int, text string, style tcell.Style) {
	width, _ := screen.Size()
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(text) {
			r = rune(text[col])
		}
		screen.SetContent(col, row, r, nil, style)
	}
}
