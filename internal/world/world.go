// Package world streams the procedural side-scroller world around a moving
// viewpoint. Each tick it generates the newly exposed ground columns and
// trees, sweeps out the ones that left the margin, and advances leaf sway,
// fruit regrowth, the cloud, rain drops and the day cycle.
package world

import (
	"cmp"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"time"

	"pepse/internal/core"
	"pepse/internal/world/daynight"
	"pepse/internal/world/flora"
	"pepse/internal/world/rain"
	"pepse/internal/world/terrain"
)

// World owns every streamed entity and the transient state around them.
type World struct {
	cfg  Config
	log  *log.Logger
	host core.Host

	noise   *terrain.NoiseField
	terrain *terrain.Streamer
	flora   *flora.Placer
	tracker *Tracker

	columns map[int][]*core.Entity
	trees   map[int]*flora.Tree

	pool  *rain.Pool
	cloud *rain.Cloud
	cycle *daynight.Cycle

	nextID        core.ID
	dropsFinished int
}

// New builds a world from a validated configuration. Nothing is streamed
// until the first tick.
func New(cfg Config) *World {
	viewport := core.Vec2{X: float64(cfg.ViewportWidth), Y: float64(cfg.ViewportHeight)}
	noise := terrain.NewNoiseField(cfg.Terrain, cfg.Seed, viewport.Y)

	fcfg := cfg.Flora
	fcfg.RegrowDelay = cfg.DayNight.DayLength

	w := &World{
		cfg:     cfg,
		log:     log.New(os.Stderr, "[world] ", log.LstdFlags),
		noise:   noise,
		terrain: terrain.NewStreamer(cfg.Terrain, cfg.Seed, noise.Height),
		flora:   flora.NewPlacer(fcfg, cfg.Terrain.BlockSize, cfg.Seed, noise.Height),
		tracker: NewTracker(viewport.X, cfg.Margin),
		columns: make(map[int][]*core.Entity),
		trees:   make(map[int]*flora.Tree),
		pool:    rain.NewPool(cfg.Rain, cfg.Seed),
		cloud:   rain.NewCloud(cfg.Rain, cfg.Terrain.BlockSize, viewport),
		cycle:   daynight.New(cfg.DayNight, viewport, noise.Height),
	}
	for _, e := range w.fixed() {
		w.assignID(e)
	}
	return w
}

// SetLogger replaces the world logger. A nil logger discards output.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	w.log = l
}

// SetHost attaches the engine registry and hands it every live entity.
func (w *World) SetHost(h core.Host) {
	w.host = h
	if h == nil {
		return
	}
	for _, e := range w.Entities() {
		h.Add(e, core.LayerFor(e.Kind))
	}
}

// Config returns the world configuration.
func (w *World) Config() Config { return w.cfg }

// Height samples the terrain height field.
func (w *World) Height(x float64) float64 { return w.noise.Height(x) }

// GroundTop returns the y of the topmost ground block under x.
func (w *World) GroundTop(x float64) float64 { return w.terrain.GroundTop(x) }

// Tracker exposes the viewpoint tracker.
func (w *World) Tracker() *Tracker { return w.tracker }

// Cloud returns the rain cloud.
func (w *World) Cloud() *rain.Cloud { return w.cloud }

// RainPool returns the drop pool.
func (w *World) RainPool() *rain.Pool { return w.pool }

// Cycle returns the day/night state.
func (w *World) Cycle() *daynight.Cycle { return w.cycle }

// ColumnCount returns the number of live ground columns.
func (w *World) ColumnCount() int { return len(w.columns) }

// TreeCount returns the number of live trees.
func (w *World) TreeCount() int { return len(w.trees) }

// DropsFinished returns how many drops have faded out since creation.
func (w *World) DropsFinished() int { return w.dropsFinished }

// ColumnXs returns the grid x of every live column in ascending order.
func (w *World) ColumnXs() []int { return slices.Sorted(maps.Keys(w.columns)) }

// Trees returns the live trees ordered by x.
func (w *World) Trees() []*flora.Tree {
	trees := slices.Collect(maps.Values(w.trees))
	slices.SortFunc(trees, func(a, b *flora.Tree) int { return cmp.Compare(a.X, b.X) })
	return trees
}

// OnTick moves the viewpoint to x, generating the newly exposed columns and
// trees and sweeping everything outside the margin. Non-finite viewpoints are
// logged and ignored.
func (w *World) OnTick(x float64) (added, removed []*core.Entity) {
	want, err := w.tracker.Advance(x)
	if err != nil {
		w.log.Printf("skip tick: %v", err)
		return nil, nil
	}

	if !want.Empty() {
		for _, gx := range terrain.GridXs(want.Min, want.Max, w.terrain.BlockSize()) {
			if _, ok := w.columns[gx]; ok {
				continue
			}
			col := w.terrain.Column(gx)
			w.columns[gx] = col
			added = append(added, col...)
			if tree, ok := w.flora.TreeAt(gx); ok {
				w.trees[gx] = tree
				added = append(added, tree.Entities()...)
			}
		}
	}

	size := float64(w.terrain.BlockSize())
	for _, gx := range w.ColumnXs() {
		if w.tracker.KeepExtent(float64(gx), size) {
			continue
		}
		removed = append(removed, w.columns[gx]...)
		delete(w.columns, gx)
		if tree, ok := w.trees[gx]; ok {
			removed = append(removed, tree.Entities()...)
			delete(w.trees, gx)
		}
	}

	for _, e := range added {
		w.assignID(e)
		if w.host != nil {
			w.host.Add(e, core.LayerFor(e.Kind))
		}
	}
	if w.host != nil {
		for _, e := range removed {
			w.host.Remove(e, core.LayerFor(e.Kind))
		}
	}
	return added, removed
}

// Update runs one tick: streaming around x, then every time-driven animation.
func (w *World) Update(dt time.Duration, x float64) (added, removed []*core.Entity) {
	added, removed = w.OnTick(x)
	for _, t := range w.trees {
		t.Advance(dt)
	}
	w.cloud.Advance(dt)
	w.pool.Advance(dt)
	w.cycle.Advance(dt)
	return added, removed
}

// Rain sheds a burst of drops from the cloud and returns how many fell.
func (w *World) Rain() int {
	drops := w.pool.CreateRain(w.cloud.Center(), func(*rain.Drop) { w.dropsFinished++ })
	return len(drops)
}

// Harvest consumes every present fruit overlapping r and returns the energy
// gained.
func (w *World) Harvest(r core.Rect) float64 {
	energy := 0.0
	for _, t := range w.trees {
		for _, f := range t.Fruits {
			if !f.Present() || !f.Entity.Bounds().Overlaps(r) {
				continue
			}
			if e, ok := f.Consume(); ok {
				energy += e
			}
		}
	}
	return energy
}

// Entities returns every live entity ordered by drawing layer.
func (w *World) Entities() []*core.Entity {
	out := w.fixed()
	for _, gx := range w.ColumnXs() {
		out = append(out, w.columns[gx]...)
		if t, ok := w.trees[gx]; ok {
			out = append(out, t.Entities()...)
		}
	}
	slices.SortStableFunc(out, func(a, b *core.Entity) int {
		return cmp.Compare(core.LayerFor(a.Kind), core.LayerFor(b.Kind))
	})
	return out
}

// fixed lists the entities that live for the whole session.
func (w *World) fixed() []*core.Entity {
	out := w.cycle.Entities()
	out = append(out, w.cloud.Blocks()...)
	for _, d := range w.pool.Drops() {
		out = append(out, d.Entity)
	}
	return out
}

func (w *World) assignID(e *core.Entity) {
	w.nextID++
	e.ID = w.nextID
}
