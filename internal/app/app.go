//go:build ebiten

package app

import (
	"time"

	"pepse/internal/render"
	"pepse/internal/ui"
	"pepse/internal/world"
	"pepse/internal/world/avatar"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided world configuration.
func New(cfg world.Config) *Game {
	g := &Game{session: NewSession(cfg), painter: render.NewPainter()}
	g.attach()
	return g
}

func (g *Game) attach() {
	g.hud = ui.NewHUD(g.session.World, g.session.Avatar)
	g.overlay = ui.NewOverlay(g.session.World)
}

// Reset rebuilds the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
	g.attach()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		in := avatar.Input{
			Left:  ebiten.IsKeyPressed(ebiten.KeyLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyRight),
			Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
		}
		g.session.Step(time.Second/time.Duration(ebiten.TPS()), in)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.session.Camera()
	g.painter.Draw(screen, g.session.Entities(), cam)
	g.hud.Draw(screen)
	g.overlay.Draw(screen, cam)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.session.Viewport()
	return int(v.X), int(v.Y)
}
