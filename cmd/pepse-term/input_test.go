package main

import (
	"testing"
	"time"

	"pepse/internal/world/avatar"

	"github.com/gdamore/tcell/v2"
)

func TestKeyLatchHoldsAfterPress(t *testing.T) {
	k := keyLatch{hold: 150 * time.Millisecond}
	now := time.Unix(100, 0)

	k.press(tcell.KeyRight, 0, now)
	k.press(tcell.KeyRune, ' ', now)
	if got := k.input(now.Add(100 * time.Millisecond)); got != (avatar.Input{Right: true, Jump: true}) {
		t.Fatalf("input = %+v, want right and jump held", got)
	}
	if got := k.input(now.Add(150 * time.Millisecond)); got != (avatar.Input{}) {
		t.Fatalf("input = %+v, want everything released", got)
	}

	k.press(tcell.KeyRune, 'a', now)
	if got := k.input(now); !got.Left {
		t.Fatal("'a' should hold left")
	}
}

func TestSilentToneIgnoresRain(t *testing.T) {
	var s tone
	s.rain(5)
	s.close()
}
