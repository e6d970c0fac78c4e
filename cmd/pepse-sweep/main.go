package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"pepse/internal/app"
	"pepse/internal/render"
	"pepse/internal/world"
	"pepse/internal/world/avatar"
)

type paramSet struct {
	seed          int64
	treeThreshold float64
	noiseFactor   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("seed=%d tree=%.2f noise=%.0f", p.seed, p.treeThreshold, p.noiseFactor)
}

type scenarioResult struct {
	params       paramSet
	distance     float64
	trees        int
	fruits       int
	columnsSeen  int
	peakColumns  int
	peakEntities int
	minHeight    float64
	maxHeight    float64
	rainBursts   int
	dropsDone    int
	finalEnergy  float64
}

// density is the share of streamed columns that carried a tree.
func (r scenarioResult) density() float64 {
	if r.columnsSeen == 0 {
		return 0
	}
	return float64(r.trees) / float64(r.columnsSeen)
}

func main() {
	steps := flag.Int("steps", 1800, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	tuning := flag.String("tuning", "", "YAML tuning file used as the base config")
	preview := flag.String("png", "", "write a raster preview of the densest scenario to this file")
	flag.Parse()

	base, err := world.LoadTuning(*tuning)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seeds := []int64{1, 7, 42, 1337, 2024}
	treeOptions := []float64{0.05, 0.1, 0.2}
	noiseOptions := []float64{100, 200, 300}

	var sets []paramSet
	for _, seed := range seeds {
		for _, tree := range treeOptions {
			for _, noise := range noiseOptions {
				sets = append(sets, paramSet{seed: seed, treeThreshold: tree, noiseFactor: noise})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].density() > all[j].density() })
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) density=%.3f trees=%d fruits=%d columns=%d peak=%d/%d height[%.0f,%.0f] dist=%.0f rain=%d drops=%d energy=%.1f %s\n",
			i+1, res.density(), res.trees, res.fruits, res.columnsSeen, res.peakColumns, res.peakEntities,
			res.minHeight, res.maxHeight, res.distance, res.rainBursts, res.dropsDone, res.finalEnergy, res.params)
	}

	if *preview != "" && len(all) > 0 {
		if err := writePreview(*preview, base, all[0].params, *steps); err != nil {
			log.Fatalf("preview: %v", err)
		}
		fmt.Printf("\nPreview of %s written to %s\n", all[0].params, *preview)
	}
}

func configure(base world.Config, params paramSet) world.Config {
	cfg := base
	cfg.Seed = params.seed
	cfg.Flora.TreeThreshold = params.treeThreshold
	cfg.Terrain.NoiseFactor = params.noiseFactor
	return cfg
}

// drive runs the avatar right, jumping once a second.
func drive(s *app.Session, steps int, each func(added int)) {
	dt := time.Second / 60
	for i := 0; i < steps; i++ {
		in := avatar.Input{Right: true, Jump: i%60 == 0}
		added, _ := s.Step(dt, in)
		if each != nil {
			each(len(added))
		}
	}
}

func runScenario(base world.Config, params paramSet, steps int) scenarioResult {
	s := app.NewSession(configure(base, params))
	res := scenarioResult{params: params, minHeight: math.Inf(1), maxHeight: math.Inf(-1)}
	s.OnRain = func(int) { res.rainBursts++ }

	seenTrees := make(map[int]bool)
	seenCols := make(map[int]bool)
	startX := s.Avatar.Entity.Center().X

	drive(s, steps, func(int) {
		for _, x := range s.World.ColumnXs() {
			if seenCols[x] {
				continue
			}
			seenCols[x] = true
			h := s.World.Height(float64(x))
			res.minHeight = math.Min(res.minHeight, h)
			res.maxHeight = math.Max(res.maxHeight, h)
		}
		for _, t := range s.World.Trees() {
			if !seenTrees[t.X] {
				seenTrees[t.X] = true
				res.fruits += len(t.Fruits)
			}
		}
		res.peakColumns = max(res.peakColumns, s.World.ColumnCount())
		res.peakEntities = max(res.peakEntities, len(s.World.Entities()))
	})

	res.distance = s.Avatar.Entity.Center().X - startX
	res.trees = len(seenTrees)
	res.columnsSeen = len(seenCols)
	res.dropsDone = s.World.DropsFinished()
	res.finalEnergy = s.Avatar.Energy()
	return res
}

func writePreview(path string, base world.Config, params paramSet, steps int) error {
	s := app.NewSession(configure(base, params))
	drive(s, steps, nil)

	v := s.Viewport()
	r := render.NewRaster(int(v.X)/4, int(v.Y)/4, v)
	r.Draw(s.Entities(), s.Camera())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
