//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pepse/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wc, err := cfg.World(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game := app.New(wc)

	ebiten.SetWindowTitle("pepse")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(wc.ViewportWidth, wc.ViewportHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
