package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/mocksensors/internal/config"
	"pkg.jsn.cam/mocksensors/pkg/generator"
	"pkg.jsn.cam/mocksensors/pkg/geojson"
	"pkg.jsn.cam/mocksensors/pkg/output"
)

/*generates a GeoJSON FeatureCollection of randomly placed sensors*/

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	list := false

	fs := flag.NewFlagSet("mocksensors", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of sensors to generate")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output GeoJSON file path")
	fs.StringVar(&cfg.Generator, "generator", cfg.Generator, "Generator to use (see -list)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (random when unset)")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&list, "list", false, "List available generators and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	countSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seeded = true
		case "count":
			countSet = true
		}
	})

	if list {
		for _, name := range generator.List() {
			g, _ := generator.Get(name)
			fmt.Fprintf(stdout, "%-10s %s (default %d)\n", name, g.Description(), g.DefaultCount())
		}
		return nil
	}

	g, err := generator.Get(cfg.Generator)
	if err != nil {
		return err
	}

	switch fs.NArg() {
	case 0:
		if !countSet {
			cfg.Count = g.DefaultCount()
		}
	case 1:
		n, err := config.ParseCount(fs.Arg(0))
		if err != nil {
			return err
		}
		cfg.Count = n
	default:
		return fmt.Errorf("expected at most one argument (count), got %d", fs.NArg())
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(stderr, "", log.LstdFlags)
	return generate(g, cfg, stdout, stderr, logger)
}

func generate(g generator.Generator, cfg config.Config, stdout, stderr io.Writer, logger *log.Logger) error {
	if !cfg.Seeded {
		cfg.Seed = rand.Uint64()
	}
	g.Init(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))

	runID := uuid.NewString()
	start := time.Now()
	logger.Printf("[RUN %s] generating %d records with %q (seed=%d) -> %s",
		runID, cfg.Count, cfg.Generator, cfg.Seed, cfg.Output)

	var progress func(int) error
	if cfg.Progress && cfg.Count > 0 {
		bar := progressbar.NewOptions(cfg.Count,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		progress = bar.Set
	}

	fc, err := generator.Collect(g, cfg.Count, progress)
	if err != nil {
		return err
	}

	data, err := geojson.Encode(fc)
	if err != nil {
		return err
	}

	if err := output.WriteFile(cfg.Output, data); err != nil {
		return err
	}

	logger.Printf("[RUN %s] wrote %d features (%s) in %v",
		runID, len(fc.Features), humanize.Bytes(uint64(len(data))), time.Since(start))
	fmt.Fprintf(stdout, "✅ %s created.\n", cfg.Output)
	return nil
}
