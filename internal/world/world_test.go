package world

import (
	"bytes"
	"log"
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"pepse/internal/core"
)

type recordingHost struct {
	t    *testing.T
	live map[*core.Entity]core.Layer
}

func newRecordingHost(t *testing.T) *recordingHost {
	return &recordingHost{t: t, live: make(map[*core.Entity]core.Layer)}
}

func (h *recordingHost) Add(e *core.Entity, layer core.Layer) {
	if _, dup := h.live[e]; dup {
		h.t.Fatalf("entity %d (%v) added twice", e.ID, e.Kind)
	}
	h.live[e] = layer
}

func (h *recordingHost) Remove(e *core.Entity, layer core.Layer) {
	got, ok := h.live[e]
	if !ok {
		h.t.Fatalf("entity %d (%v) removed but never added", e.ID, e.Kind)
	}
	if got != layer {
		h.t.Fatalf("entity %d removed from layer %d, added to %d", e.ID, layer, got)
	}
	delete(h.live, e)
}

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.ViewportWidth = 800
	return cfg
}

func TestScenarioStreamsAndSweeps(t *testing.T) {
	w := New(scenarioConfig())
	w.SetHost(newRecordingHost(t))

	w.OnTick(500)
	xs := w.ColumnXs()
	if len(xs) != 27 || xs[0] != 90 || xs[len(xs)-1] != 870 {
		t.Fatalf("first tick columns = %d [%d..%d], want 27 [90..870]", len(xs), xs[0], xs[len(xs)-1])
	}

	added, removed := w.OnTick(900)
	xs = w.ColumnXs()
	if xs[0] != 450 || xs[len(xs)-1] != 1290 {
		t.Fatalf("columns span [%d..%d], want [450..1290]", xs[0], xs[len(xs)-1])
	}
	depth := w.Config().Terrain.Depth
	ground := 0
	for _, e := range added {
		if e.Kind == core.KindGround {
			ground++
		}
	}
	if ground != 14*depth {
		t.Fatalf("added %d ground blocks, want %d", ground, 14*depth)
	}
	ground = 0
	for _, e := range removed {
		if e.Kind == core.KindGround {
			ground++
			if e.Pos.X >= 450 {
				t.Fatalf("removed column at x=%v inside the margin", e.Pos.X)
			}
		}
	}
	if ground != 12*depth {
		t.Fatalf("removed %d ground blocks, want %d", ground, 12*depth)
	}
}

func TestNoDuplicateColumns(t *testing.T) {
	for _, margin := range []float64{50, 0} {
		host := newRecordingHost(t)
		cfg := scenarioConfig()
		cfg.Margin = margin
		w := New(cfg)
		w.SetHost(host)
		size := float64(cfg.Terrain.BlockSize)

		path := []float64{0, 10, 25, 400, 390, -200, -190, 2000, 1999, 2000, 0}
		for _, x := range path {
			w.Update(time.Second/60, x)
			xs := w.ColumnXs()
			if len(slices.Compact(slices.Clone(xs))) != len(xs) {
				t.Fatalf("margin %v: duplicate columns at viewpoint %v", margin, x)
			}
			v := w.Tracker().Visible()
			for _, gx := range terrainXs(v, w) {
				if !slices.Contains(xs, gx) {
					t.Fatalf("margin %v, viewpoint %v: visible column %d missing", margin, x, gx)
				}
			}
			for _, gx := range xs {
				if !w.Tracker().KeepExtent(float64(gx), size) {
					t.Fatalf("margin %v, viewpoint %v: column %d outside margin survived", margin, x, gx)
				}
			}
		}
		if got, want := len(host.live), len(w.Entities()); got != want {
			t.Fatalf("margin %v: host holds %d entities, world %d", margin, got, want)
		}
	}
}

func TestZeroMarginKeepsStraddlingColumn(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Margin = 0
	w := New(cfg)

	added, removed := w.OnTick(500)
	if len(removed) != 0 {
		t.Fatalf("first tick removed %d entities, want 0 (added %d)", len(removed), len(added))
	}
	xs := w.ColumnXs()
	if xs[0] != 90 {
		t.Fatalf("first column = %d, want 90 covering the left edge at 100", xs[0])
	}
}

func terrainXs(v Span, w *World) []int {
	size := w.Config().Terrain.BlockSize
	var xs []int
	for x := int(math.Floor(v.Min/float64(size))) * size; float64(x) < v.Max; x += size {
		xs = append(xs, x)
	}
	return xs
}

func TestRegeneratedColumnsMatch(t *testing.T) {
	w := New(scenarioConfig())
	w.OnTick(0)
	first := snapshotColumn(w, 60)
	w.OnTick(5000)
	if slices.Contains(w.ColumnXs(), 60) {
		t.Fatal("column 60 should have been swept")
	}
	w.OnTick(0)
	if again := snapshotColumn(w, 60); !slices.Equal(first, again) {
		t.Fatal("regenerated column differs")
	}
}

type blockShape struct {
	pos core.Vec2
	r   uint8
	g   uint8
	b   uint8
}

func snapshotColumn(w *World, x int) []blockShape {
	var out []blockShape
	for _, e := range w.columns[x] {
		out = append(out, blockShape{pos: e.Pos, r: e.Color.R, g: e.Color.G, b: e.Color.B})
	}
	return out
}

func TestNonFiniteViewpointIsLogged(t *testing.T) {
	var buf bytes.Buffer
	w := New(scenarioConfig())
	w.SetLogger(log.New(&buf, "", 0))
	w.OnTick(500)
	before := w.ColumnCount()

	added, removed := w.OnTick(math.NaN())
	if added != nil || removed != nil {
		t.Fatal("NaN viewpoint should change nothing")
	}
	w.OnTick(math.Inf(1))
	if !strings.Contains(buf.String(), "viewpoint is not finite") {
		t.Fatalf("log = %q, want a non-finite viewpoint entry", buf.String())
	}
	if added, _ := w.OnTick(500); len(added) != 0 || w.ColumnCount() != before {
		t.Fatal("tracker state changed after rejected viewpoints")
	}
}

func TestTreesFollowColumns(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Flora.TreeThreshold = 1
	w := New(cfg)
	w.OnTick(500)
	if w.TreeCount() != w.ColumnCount() {
		t.Fatalf("%d trees for %d columns with threshold 1", w.TreeCount(), w.ColumnCount())
	}
	w.OnTick(900)
	for _, tree := range w.Trees() {
		if !slices.Contains(w.ColumnXs(), tree.X) {
			t.Fatalf("tree at %d outlived its column", tree.X)
		}
	}
}

func TestFruitRegrowsThroughWorld(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Flora.TreeThreshold = 1
	cfg.Flora.LeafThreshold = 0
	cfg.Flora.FruitThreshold = 1
	cfg.Flora.LeavesPerRow = 1
	w := New(cfg)
	w.OnTick(500)

	everywhere := core.Rect{Min: core.Vec2{X: -1e6, Y: -1e6}, Size: core.Vec2{X: 2e6, Y: 2e6}}
	want := float64(w.TreeCount()) * cfg.Flora.FruitEnergy
	if got := w.Harvest(everywhere); got != want {
		t.Fatalf("first harvest = %v, want %v", got, want)
	}
	if got := w.Harvest(everywhere); got != 0 {
		t.Fatalf("second harvest = %v, want 0", got)
	}

	step := 500 * time.Millisecond
	for elapsed := step; elapsed < cfg.DayNight.DayLength; elapsed += step {
		w.Update(step, 500)
		if got := w.Harvest(everywhere); got != 0 {
			t.Fatalf("fruit regrew early at %v", elapsed)
		}
	}
	w.Update(step, 500)
	if got := w.Harvest(everywhere); got != want {
		t.Fatalf("harvest after one day = %v, want %v", got, want)
	}
}

func TestRainFallsFromCloudAndRecycles(t *testing.T) {
	w := New(scenarioConfig())
	pool := w.RainPool()
	n := w.Rain()
	if n < 1 || n > w.Config().Rain.MaxDropsPerBurst {
		t.Fatalf("burst of %d drops", n)
	}
	if pool.Active() != n {
		t.Fatalf("active = %d, want %d", pool.Active(), n)
	}
	for i := 0; i < 100; i++ {
		w.Rain()
		if pool.Active() > pool.Capacity() {
			t.Fatalf("active drops %d exceed capacity %d", pool.Active(), pool.Capacity())
		}
	}
	w.Update(w.Config().Rain.FadeDuration, 0)
	if pool.Active() != 0 {
		t.Fatalf("active = %d after fade, want 0", pool.Active())
	}
	if w.DropsFinished() != pool.Capacity() {
		t.Fatalf("finished = %d, want %d", w.DropsFinished(), pool.Capacity())
	}
}

func TestEntitiesOrderedByLayer(t *testing.T) {
	w := New(scenarioConfig())
	w.OnTick(0)
	es := w.Entities()
	if es[0].Kind != core.KindSky {
		t.Fatalf("first entity is %v, want sky", es[0].Kind)
	}
	ids := make(map[core.ID]bool)
	for i, e := range es {
		if i > 0 && core.LayerFor(es[i-1].Kind) > core.LayerFor(e.Kind) {
			t.Fatalf("entity %d (%v) drawn before lower layer", i, e.Kind)
		}
		if e.ID == 0 || ids[e.ID] {
			t.Fatalf("entity %d has missing or duplicate id %d", i, e.ID)
		}
		ids[e.ID] = true
	}
}

func TestParametersExposeConfig(t *testing.T) {
	w := New(scenarioConfig())
	snap := w.Parameters()
	cases := map[string]string{
		"seed":       "42",
		"w":          "800",
		"day_length": "30s",
		"block_size": "30",
	}
	for key, want := range cases {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
}
