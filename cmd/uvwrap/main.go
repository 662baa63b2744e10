// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/geomesh/uvwrap"
	"github.com/geomesh/uvwrap/objio"
)

// Usage: unwrap <input.obj> <output.obj> [--angle X] [--min-faces N] [--pack] [--margin M]
// plus the additive --report, --parallel and --dup-seams flags (spec.md §6, SPEC_FULL.md §6).
func main() {
	angle := flag.Float64("angle", 30, "angular-defect threshold in degrees (reserved, unused by the baseline seam pass)")
	minFaces := flag.Int("min-faces", 0, "islands with fewer faces than this are left unmapped")
	pack := flag.Bool("pack", false, "pack islands into the unit square")
	margin := flag.Float64("margin", 0.02, "inter-island margin in UV units, used with --pack")
	report := flag.Bool("report", false, "print a quality report to stdout after unwrapping")
	parallel := flag.Bool("parallel", false, "solve islands concurrently")
	dupSeams := flag.Bool("dup-seams", false, "give each island its own copy of shared seam vertices")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: uvwrap <input.obj> <output.obj> [--angle X] [--min-faces N] [--pack] [--margin M] [--report] [--parallel] [--dup-seams]")
		os.Exit(1)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	if err := run(inputPath, outputPath, *angle, *minFaces, *pack, *margin, *report, *parallel, *dupSeams); err != nil {
		log.Fatal(err)
	}
}

func run(inputPath, outputPath string, angle float64, minFaces int, pack bool, margin float64, report, parallel, dupSeams bool) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("uvwrap: %w", err)
	}
	defer in.Close()

	mesh, diagnostics := objio.Load(in)
	for _, d := range diagnostics {
		log.Print(d)
	}

	params, err := uvwrap.NewParams(
		uvwrap.WithAngleThreshold(angle),
		uvwrap.WithMinIslandFaces(minFaces),
		uvwrap.WithPackIslands(pack),
		uvwrap.WithIslandMargin(margin),
		uvwrap.WithParallelIslands(parallel),
		uvwrap.WithDuplicateSeamVertices(dupSeams),
	)
	if err != nil {
		return fmt.Errorf("uvwrap: %w", err)
	}

	result, metadata, err := uvwrap.Run(mesh, params)
	if err != nil {
		return fmt.Errorf("uvwrap: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("uvwrap: %w", err)
	}
	defer out.Close()

	if err := objio.Save(out, result); err != nil {
		return fmt.Errorf("uvwrap: %w", err)
	}

	if report {
		fmt.Print(uvwrap.FormatReport(metadata))
	}
	return nil
}
