// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// uvwrapbatch unwraps every .obj file in a directory using a bounded
// worker pool, the batch-processing feature
// original_source/starter_code/part2_python/uvwrap/processor.py sketches
// with a ThreadPoolExecutor. spec.md's distillation dropped this
// surface; SPEC_FULL.md §5 supplements it as a second cmd/ binary, not
// a change to the hard core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/geomesh/uvwrap"
	"github.com/geomesh/uvwrap/objio"
)

func main() {
	inputDir := flag.String("in", "", "directory of .obj files to unwrap")
	outputDir := flag.String("out", "", "directory to write unwrapped .obj files to")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	pack := flag.Bool("pack", false, "pack islands into the unit square")
	margin := flag.Float64("margin", 0.02, "inter-island margin in UV units, used with --pack")
	flag.Parse()

	if *inputDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: uvwrapbatch --in <dir> --out <dir> [--workers N] [--pack] [--margin M]")
		os.Exit(1)
	}

	if err := runBatch(*inputDir, *outputDir, *workers, *pack, *margin); err != nil {
		log.Fatal(err)
	}
}

func runBatch(inputDir, outputDir string, workers int, pack bool, margin float64) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("uvwrapbatch: %w", err)
	}

	entries, err := filepath.Glob(filepath.Join(inputDir, "*.obj"))
	if err != nil {
		return fmt.Errorf("uvwrapbatch: %w", err)
	}

	params, err := uvwrap.NewParams(uvwrap.WithPackIslands(pack), uvwrap.WithIslandMargin(margin))
	if err != nil {
		return fmt.Errorf("uvwrapbatch: %w", err)
	}

	if workers < 1 {
		workers = 1
	}
	jobs := make(chan string)
	var wg sync.WaitGroup
	var completedMu sync.Mutex
	completed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := processOne(path, outputDir, params); err != nil {
					log.Printf("uvwrapbatch: %s: %v", path, err)
				}
				completedMu.Lock()
				completed++
				log.Printf("uvwrapbatch: %d/%d done (%s)", completed, len(entries), filepath.Base(path))
				completedMu.Unlock()
			}
		}()
	}

	for _, path := range entries {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return nil
}

func processOne(path, outputDir string, params uvwrap.Params) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	mesh, diagnostics := objio.Load(in)
	for _, d := range diagnostics {
		log.Print(d)
	}

	result, _, err := uvwrap.Run(mesh, params)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, filepath.Base(path))
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return objio.Save(out, result)
}
