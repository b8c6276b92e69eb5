// ABOUTME: Entry point for the soundgen tone generator
// ABOUTME: Parses CLI flags, builds the run configuration and dispatches to the core
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/soundgen/soundgen-go/internal/app"
	"github.com/soundgen/soundgen-go/internal/config"
	"github.com/soundgen/soundgen-go/internal/ui"
	"github.com/soundgen/soundgen-go/internal/version"
	"github.com/soundgen/soundgen-go/pkg/synth"
)

var (
	filePath    = flag.String("file", "", "Output file path (default: stdout)")
	appendMode  = flag.Bool("append", false, "Append to an existing WAV file instead of creating one (requires -file)")
	durationMs  = flag.Uint("duration", 1000, "Duration of the sound in milliseconds")
	amplitude   = flag.Float64("amplitude", 33.333333, "Amplitude as a percentage of full scale")
	sampleRate  = flag.Uint("sample-rate", 44100, "Samples per second")
	waveName    = flag.String("wave", "sine", "Wave shape: sine, square, triangle, sawtooth, point or circle")
	overtones   = flag.Int("overtones", 0, "Number of overtones to layer above each frequency")
	play        = flag.Bool("play", false, "Play the result through the default audio device")
	fromPath    = flag.String("from", "", "Containerize an existing .mp3 or .flac file instead of synthesizing")
	presetName  = flag.String("preset", "", "Apply a named preset from the presets file")
	presetsPath = flag.String("presets", "", "YAML presets file path")
	interactive = flag.Bool("interactive", false, "Audition the tone in a TUI before writing")
	showVersion = flag.Bool("version", false, "Display version information")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", version.Product, version.Version)
		return
	}

	// The core returns errors; this is the single place that terminates.
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] frequency [frequency ...]\n", version.Product)
	flag.PrintDefaults()
}

func run() error {
	cfg, err := buildConfig(flag.Args())
	if err != nil {
		return err
	}

	if *appendMode && *filePath == "" {
		return fmt.Errorf("-append requires -file")
	}
	if *appendMode && *interactive {
		return fmt.Errorf("-append and -interactive are mutually exclusive")
	}
	if *fromPath != "" && *interactive {
		return fmt.Errorf("-from and -interactive are mutually exclusive")
	}

	if *interactive {
		return ui.Run(cfg, *filePath)
	}

	opts := app.Options{
		Config:    cfg,
		InputPath: *fromPath,
		Play:      *play,
	}

	switch {
	case *appendMode:
		f, err := os.OpenFile(*filePath, os.O_RDWR, 0)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", *filePath, err)
		}
		defer func() { _ = f.Close() }()
		return app.Run(opts, nil, f)
	case *filePath != "":
		f, err := os.Create(*filePath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *filePath, err)
		}
		defer func() { _ = f.Close() }()
		return app.Run(opts, f, nil)
	case *play:
		// Playback only; no binary dump on the terminal.
		return app.Run(opts, nil, nil)
	default:
		return app.Run(opts, os.Stdout, nil)
	}
}

// buildConfig assembles and validates the run configuration from flags,
// positional frequencies and an optional preset.
func buildConfig(args []string) (config.Config, error) {
	cfg := config.Default()
	cfg.Amplitude = *amplitude
	cfg.Overtones = *overtones

	var err error
	if cfg.DurationMs, err = uint32Value("duration", uint64(*durationMs)); err != nil {
		return config.Config{}, err
	}
	if cfg.SampleRate, err = uint32Value("sample-rate", uint64(*sampleRate)); err != nil {
		return config.Config{}, err
	}

	// Input-file runs take their samples and rate from the decoded file;
	// synthesis parameters are rejected rather than silently ignored.
	if *fromPath != "" {
		if len(args) > 0 {
			return config.Config{}, fmt.Errorf("-from does not take frequency arguments, got %q", args[0])
		}
		if name := setSynthesisFlag(); name != "" {
			return config.Config{}, fmt.Errorf("-%s does not apply with -from", name)
		}
		return cfg, nil
	}

	shape, err := synth.ParseShape(*waveName)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Shape = shape

	for _, arg := range args {
		freq, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return config.Config{}, fmt.Errorf("frequency must be a number, got %q", arg)
		}
		cfg.Frequencies = append(cfg.Frequencies, freq)
	}

	if *presetName != "" {
		if *presetsPath == "" {
			return config.Config{}, fmt.Errorf("-preset requires -presets")
		}
		presets, err := config.LoadPresets(*presetsPath)
		if err != nil {
			return config.Config{}, err
		}
		preset, ok := presets[*presetName]
		if !ok {
			return config.Config{}, fmt.Errorf("unknown preset %q in %s", *presetName, *presetsPath)
		}
		cfg, err = cfg.Apply(preset)
		if err != nil {
			return config.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// uint32Value narrows a parsed flag value, rejecting anything the 32-bit
// configuration fields cannot hold without wrapping.
func uint32Value(name string, v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("-%s must be at most %d, got %d", name, uint64(math.MaxUint32), v)
	}
	return uint32(v), nil
}

// setSynthesisFlag returns the name of the first synthesis-only flag given on
// the command line, or "" when none was.
func setSynthesisFlag() string {
	synthesisFlags := map[string]bool{
		"duration":    true,
		"amplitude":   true,
		"sample-rate": true,
		"wave":        true,
		"overtones":   true,
		"preset":      true,
		"presets":     true,
	}
	name := ""
	flag.Visit(func(f *flag.Flag) {
		if name == "" && synthesisFlags[f.Name] {
			name = f.Name
		}
	})
	return name
}
