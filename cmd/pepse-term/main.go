package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"time"

	"pepse/internal/app"
	"pepse/internal/core"
	"pepse/internal/render"
	"pepse/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const keyHold = 150 * time.Millisecond

type term struct {
	screen  tcell.Screen
	session *app.Session
	step    *core.FixedStep
	raster  *render.Raster
	keys    keyLatch
	sound   tone
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable the rain tone")
	flag.Parse()

	wc, err := cfg.World(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	// The screen owns the terminal until Fini, so world logs are replayed after.
	var logs bytes.Buffer
	t := &term{
		screen:  screen,
		session: app.NewSession(wc),
		step:    core.NewFixedStep(cfg.TPS),
		keys:    keyLatch{hold: keyHold},
	}
	t.session.SetLogger(log.New(&logs, "[world] ", log.LstdFlags))
	if !*mute {
		if err := t.sound.init(); err != nil {
			logs.WriteString("audio disabled: " + err.Error() + "\n")
		}
	}
	t.session.OnRain = t.sound.rain

	t.run()

	t.sound.close()
	screen.Fini()
	os.Stderr.Write(logs.Bytes())
}

func (t *term) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			for t.step.ShouldStep() {
				t.session.Step(t.step.Step(), t.keys.input(now))
			}
			t.draw()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (t *term) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			t.session.Reset(t.session.Seed())
		case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
			t.session.Reset(now.UnixNano())
		default:
			t.keys.press(ev.Key(), ev.Rune(), now)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.raster = nil
	}
	return true
}

func (t *term) draw() {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	if t.raster == nil || t.raster.Kinds.W != cols || t.raster.Kinds.H != rows-1 {
		t.raster = render.NewRaster(cols, rows-1, t.session.Viewport())
	}
	t.raster.Draw(t.session.Entities(), t.session.Camera())

	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			kind, c, ok := t.raster.At(x, y)
			glyph := ' '
			if ok {
				glyph = render.Glyph(kind)
			}
			style := tcell.StyleDefault.
				Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
				Foreground(tcell.ColorWhite)
			t.screen.SetContent(x, y, glyph, nil, style)
		}
	}

	energy := t.session.Avatar.Energy()
	ec := ui.EnergyColor(energy)
	status := ui.EnergyText(energy) + "  <-/-> run  space jump  r reset  s new seed  q quit"
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(ec.R), int32(ec.G), int32(ec.B)))
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		t.screen.SetContent(x, rows-1, r, nil, style)
	}
	t.screen.Show()
}
