package main

import (
	"time"

	"pepse/internal/world/avatar"

	"github.com/gdamore/tcell/v2"
)

// keyLatch turns terminal key presses into held keys. Terminals only report
// presses and auto-repeat, so a key counts as held for hold after each press.
type keyLatch struct {
	hold  time.Duration
	left  time.Time
	right time.Time
	jump  time.Time
}

func (k *keyLatch) press(key tcell.Key, r rune, now time.Time) {
	until := now.Add(k.hold)
	switch {
	case key == tcell.KeyLeft || (key == tcell.KeyRune && r == 'a'):
		k.left = until
	case key == tcell.KeyRight || (key == tcell.KeyRune && r == 'd'):
		k.right = until
	case key == tcell.KeyUp || (key == tcell.KeyRune && r == ' '):
		k.jump = until
	}
}

func (k *keyLatch) input(now time.Time) avatar.Input {
	return avatar.Input{
		Left:  now.Before(k.left),
		Right: now.Before(k.right),
		Jump:  now.Before(k.jump),
	}
}
