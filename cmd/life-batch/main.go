package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"boardlife/internal/batch"
	"boardlife/internal/core"
	"boardlife/internal/seed"
)

type patternList []string

func (l *patternList) String() string {
	return strings.Join(*l, ",")
}

func (l *patternList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	generations := flag.Int("generations", 100, "generations to simulate per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	boardW := flag.Int("board-w", 400, "board width in cells")
	boardH := flag.Int("board-h", 300, "board height in cells")
	surfaceW := flag.Int("surface-w", 800, "snapshot width in pixels")
	surfaceH := flag.Int("surface-h", 600, "snapshot height in pixels")
	pngDir := flag.String("png", "", "directory for final-generation snapshots")
	list := flag.Bool("list", false, "list built-in patterns and exit")
	var patterns patternList
	flag.Var(&patterns, "pattern", "built-in pattern to run (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [seed.txt ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, name := range seed.Patterns() {
			fmt.Println(name)
		}
		return
	}

	geo, err := core.NewGeometry(core.C(*boardW, *boardH), core.C(*surfaceW, *surfaceH))
	if err != nil {
		log.Fatal(err)
	}

	var jobs []batch.Job
	for _, name := range patterns {
		jobs = append(jobs, batch.PatternJob(name, geo.Board()))
	}
	for _, path := range flag.Args() {
		jobs = append(jobs, batch.FileJob(path))
	}
	if len(jobs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "life-batch: ", 0)
	results, err := batch.Run(ctx, geo, jobs, batch.Options{
		Generations: *generations,
		Workers:     *workers,
		Log:         logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		line := fmt.Sprintf("%s generation=%d population=%d", r.Name, r.Generation, r.Population)
		if r.Settled >= 0 {
			line += fmt.Sprintf(" settled=%d", r.Settled)
		}
		fmt.Println(line)

		if *pngDir == "" {
			continue
		}
		out := filepath.Join(*pngDir, r.Name+".png")
		if err := batch.WritePNG(out, geo, r.Cells); err != nil {
			log.Fatal(err)
		}
	}
}
