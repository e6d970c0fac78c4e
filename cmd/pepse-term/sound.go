package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone plays a short sine blip whenever rain starts. A failed speaker init
// leaves it silent.
type tone struct {
	ready bool
}

func (t *tone) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	t.ready = true
	return nil
}

// rain pitches the blip up with the size of the burst.
func (t *tone) rain(drops int) {
	if !t.ready || drops <= 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, 440+40*float64(drops))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (t *tone) close() {
	if t.ready {
		speaker.Close()
	}
}
