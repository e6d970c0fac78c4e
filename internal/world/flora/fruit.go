package flora

import (
	"time"

	"pepse/internal/anim"
	"pepse/internal/core"
)

// FruitState is either present or depleted.
type FruitState uint8

const (
	FruitPresent FruitState = iota
	FruitDepleted
)

// Fruit is a collectible that regrows a fixed delay after being eaten.
type Fruit struct {
	Entity *core.Entity

	state  FruitState
	energy float64
	delay  time.Duration
	regrow anim.Timer
}

func newFruit(e *core.Entity, energy float64, delay time.Duration) *Fruit {
	return &Fruit{Entity: e, energy: energy, delay: delay}
}

// State returns the current fruit state.
func (f *Fruit) State() FruitState { return f.state }

// Present reports whether the fruit can be collected.
func (f *Fruit) Present() bool { return f.state == FruitPresent }

// Consume depletes a present fruit and returns its energy. Consuming a
// depleted fruit yields nothing.
func (f *Fruit) Consume() (float64, bool) {
	if f.state != FruitPresent {
		return 0, false
	}
	f.state = FruitDepleted
	f.Entity.Hidden = true
	f.regrow.Start(f.delay)
	return f.energy, true
}

// Advance runs the regrowth timer and reports whether the fruit reappeared.
func (f *Fruit) Advance(dt time.Duration) bool {
	if f.state != FruitDepleted || !f.regrow.Advance(dt) {
		return false
	}
	f.state = FruitPresent
	f.Entity.Hidden = false
	return true
}
