package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/export"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene   string
	Width   int
	Samples int
	Depth   int
	Workers int
	Seed    int
	Noise   string
	Gamma   float64
	Format  string
	Output  string
	Help    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options
func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.Scene, "scene", "default", "Scene: a built-in name, a file in scenes/, or a path to a .json scene")
	fs.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 uses the scene default)")
	fs.IntVar(&opts.Samples, "samples", 0, "Samples per pixel (0 uses the scene default)")
	fs.IntVar(&opts.Depth, "depth", -1, "Maximum bounce depth (-1 uses the scene default)")
	fs.IntVar(&opts.Workers, "workers", 1, "Render goroutines (0 uses one per CPU)")
	fs.IntVar(&opts.Seed, "seed", 0, "Seed for sample jitter and bounce directions (jitter needs -samples > 1)")
	fs.StringVar(&opts.Noise, "noise", noise.SourceXorshift, "Random source: xorshift or fractsin")
	fs.Float64Var(&opts.Gamma, "gamma", 0, "Output gamma (0 uses the scene default, 1 writes linear values)")
	fs.StringVar(&opts.Format, "format", "", "Output format: ppm, ppm-ascii or png (default: from -o, else ppm)")
	fs.StringVar(&opts.Output, "o", "", "Output file, or - for stdout (default: output/<scene>/render_<timestamp>.<ext>)")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

// printHelp lists the flags and the discoverable scenes
func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Diffuse Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")

	scenes, err := scene.ListScenes(scene.FindScenesDir())
	if err != nil {
		fmt.Fprintf(w, "  (failed to list scenes: %v)\n", err)
	}
	for _, info := range scenes {
		fmt.Fprintf(w, "  %-16s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.ppm unless -o is given")
}

// createScene resolves a scene by name, scenes/ file or path
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("scene name is empty")
	}
	return scene.Create(name, scene.FindScenesDir())
}

// overrides converts the command line into sampling overrides
func (o *options) overrides() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		Width:           o.Width,
		SamplesPerPixel: o.Samples,
		Seed:            o.Seed,
		NumWorkers:      o.Workers,
		Gamma:           o.Gamma,
	}
}

// resolveFormat picks the output format from -format, then from -o
func (o *options) resolveFormat() (export.Format, error) {
	if o.Format != "" {
		return export.ParseFormat(o.Format)
	}
	if o.Output != "" && o.Output != "-" {
		return export.FormatFromPath(o.Output)
	}
	return export.FormatPPM, nil
}

// outputPath returns where a render is saved when -o is not given
func outputPath(sceneName string, format export.Format, now time.Time) string {
	dir := filepath.Join("output", filepath.Base(sceneName))
	return filepath.Join(dir, fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), format.Extension()))
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.Help {
		printHelp(stdout, fs)
		return nil
	}

	logger := renderer.NewDefaultLogger(stderr)

	format, err := opts.resolveFormat()
	if err != nil {
		return err
	}

	source, err := noise.NewSource(opts.Noise)
	if err != nil {
		return err
	}

	selected, err := createScene(opts.Scene)
	if err != nil {
		return err
	}
	selected.Configure(opts.overrides())
	if opts.Workers == 0 {
		// 0 is not an override in MergeSamplingConfig
		selected.SamplingConfig.NumWorkers = 0
	}
	if opts.Depth >= 0 {
		selected.SamplingConfig.MaxDepth = opts.Depth
	}

	engine, err := selected.NewEngine(source, logger)
	if err != nil {
		return err
	}

	logger.Printf("[INFO] Scene %s: %d primitives, %s shading\n", selected.Name, selected.GetPrimitiveCount(), selected.Shading)
	stats := engine.Simulate()
	logger.Printf("[INFO] Simulation completed: %d samples, %.1f per pixel, %d tile(s)\n",
		stats.TotalSamples, stats.AverageSamples, stats.Tasks)

	if opts.Output == "-" {
		logger.Printf("[INFO] Render to stdout started.\n")
		if err := export.Encode(stdout, engine.Image, format); err != nil {
			return err
		}
		logger.Printf("[INFO] Render to stdout completed.\n")
		return nil
	}

	path := opts.Output
	if path == "" {
		path = outputPath(selected.Name, format, time.Now())
	}

	logger.Printf("[INFO] Render to %s started.\n", path)
	if err := export.Save(path, engine.Image, format); err != nil {
		return err
	}
	logger.Printf("[INFO] Render to %s completed.\n", path)
	return nil
}
