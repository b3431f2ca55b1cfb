// Package batch steps many seed patterns headlessly and in parallel.
package batch

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"boardlife/internal/core"
	"boardlife/internal/render"
	"boardlife/internal/seed"
)

// Job is one pattern to simulate.
type Job struct {
	Name string
	Load func() (core.CellSet, error)
}

// FileJob returns a Job reading the seed file at path. The job is named
// after the file without its extension.
func FileJob(path string) Job {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Job{Name: name, Load: func() (core.CellSet, error) { return seed.LoadFile(path) }}
}

// PatternJob returns a Job for a registered pattern centred on board.
func PatternJob(name string, board core.Coord) Job {
	return Job{Name: name, Load: func() (core.CellSet, error) {
		cells, err := seed.Pattern(name)
		if err != nil {
			return core.CellSet{}, err
		}
		return seed.Center(cells, board), nil
	}}
}

// Result is the outcome of simulating one Job.
type Result struct {
	Name       string
	Generation int
	Population int
	// Settled is the first generation equal to its successor, or -1 if the
	// run never reached a still life or an empty board.
	Settled int
	Cells   core.CellSet
}

// Options controls a batch.
type Options struct {
	Generations int
	Workers     int
	Log         core.Logger
}

// Run simulates every job on geo for opts.Generations steps. Results are in
// job order. The first failing job cancels the rest.
func Run(ctx context.Context, geo core.Geometry, jobs []Job, opts Options) ([]Result, error) {
	log := opts.Log
	if log == nil {
		log = core.NopLogger
	}
	results := make([]Result, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		eg.SetLimit(opts.Workers)
	}
	for i, job := range jobs {
		eg.Go(func() error {
			cells, err := job.Load()
			if err != nil {
				return errors.Wrapf(err, "job %s", job.Name)
			}
			clipped, dropped := geo.Clip(cells)
			if dropped > 0 {
				log.Printf("%s: dropped %d cells outside board %v", job.Name, dropped, geo.Board())
			}
			res, err := simulate(ctx, geo, clipped, opts.Generations)
			if err != nil {
				return errors.Wrapf(err, "job %s", job.Name)
			}
			res.Name = job.Name
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, geo core.Geometry, cells core.CellSet, generations int) (Result, error) {
	res := Result{Settled: -1}
	for gen := 0; gen < generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		next := core.Step(cells, geo.Neighbors)
		if res.Settled < 0 && next.Equal(cells) {
			res.Settled = gen
			// Nothing changes from here on.
			res.Generation = generations
			res.Population = cells.Len()
			res.Cells = cells
			return res, nil
		}
		cells = next
		res.Generation = gen + 1
	}
	res.Population = cells.Len()
	res.Cells = cells
	return res, nil
}

// WritePNG renders cells on geo's surface and writes it to path.
func WritePNG(path string, geo core.Geometry, cells core.CellSet) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	img := render.Rasterize(geo, cells, render.CellColor, render.Background)
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
