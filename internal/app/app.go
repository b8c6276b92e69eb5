// ABOUTME: Run orchestration from configuration to output sink
// ABOUTME: Produces the sample buffer and delivers it to file, stdout, append or speaker
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/soundgen/soundgen-go/internal/config"
	"github.com/soundgen/soundgen-go/internal/playback"
	"github.com/soundgen/soundgen-go/internal/source"
	"github.com/soundgen/soundgen-go/pkg/synth"
	"github.com/soundgen/soundgen-go/pkg/wav"
)

// Options describes one run. Exactly one producer is used: a decoded input
// file when InputPath is set, synthesis from Config otherwise.
type Options struct {
	Config    config.Config
	InputPath string
	Play      bool
}

// Produce builds the sample buffer for the run and returns it with its
// sample rate. The synthesis path expands fundamentals into their overtone
// series first, so the mix length is frequencies*(overtones+1).
func Produce(opts Options) ([]int16, uint32, error) {
	if opts.InputPath != "" {
		return source.Load(opts.InputPath)
	}

	cfg := opts.Config
	sampleCount, err := synth.SampleCount(cfg.DurationMs, cfg.SampleRate)
	if err != nil {
		return nil, 0, err
	}
	freqs := synth.Frequencies(cfg.Frequencies, cfg.Overtones)
	samples := synth.Synthesize(freqs, cfg.Amplitude, sampleCount, cfg.Shape, cfg.SampleRate)
	return samples, cfg.SampleRate, nil
}

// Run produces the sample buffer and delivers it. appendTo takes precedence
// over out; both may be nil for a play-only run. Errors are returned to the
// caller, which owns the diagnostic print and exit code.
func Run(opts Options, out io.Writer, appendTo io.ReadWriteSeeker) error {
	samples, sampleRate, err := Produce(opts)
	if err != nil {
		return err
	}

	if opts.Play {
		if err := playback.Play(samples, sampleRate); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
	}

	switch {
	case appendTo != nil:
		if err := wav.Append(appendTo, samples, sampleRate); err != nil {
			return err
		}
		log.Printf("Appended %d samples at %d Hz", len(samples), sampleRate)
	case out != nil:
		if err := wav.Write(out, samples, sampleRate); err != nil {
			return err
		}
		log.Printf("Wrote %d samples at %d Hz", len(samples), sampleRate)
	}

	return nil
}

// WriteFile runs opts with a freshly created file at path as the sink.
func WriteFile(opts Options, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Run(opts, f, nil); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
