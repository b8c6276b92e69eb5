// ABOUTME: Tests for the CLI flag glue
// ABOUTME: Covers 32-bit narrowing of flag values and input-file argument conflicts
package main

import (
	"math"
	"strings"
	"testing"
)

func TestUint32ValueBounds(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		wantErr bool
	}{
		{"one", 1, false},
		{"largest representable", math.MaxUint32, false},
		{"one past largest", math.MaxUint32 + 1, true},
		{"far past largest", math.MaxUint64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uint32Value("duration", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("uint32Value(%d) = %d, want error", tt.value, got)
				}
				if !strings.Contains(err.Error(), "-duration") {
					t.Errorf("error %q does not name the flag", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("uint32Value(%d) returned error: %v", tt.value, err)
			}
			if uint64(got) != tt.value {
				t.Errorf("uint32Value(%d) = %d", tt.value, got)
			}
		})
	}
}

func TestBuildConfigRejectsWrappedDuration(t *testing.T) {
	oldDuration := *durationMs
	defer func() { *durationMs = oldDuration }()

	// Would wrap to 1 ms if narrowed with a plain conversion.
	*durationMs = math.MaxUint32 + 2

	if _, err := buildConfig([]string{"440"}); err == nil {
		t.Fatal("expected an error for a duration above 32 bits")
	} else if !strings.Contains(err.Error(), "-duration") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestBuildConfigRejectsWrappedSampleRate(t *testing.T) {
	oldRate := *sampleRate
	defer func() { *sampleRate = oldRate }()

	*sampleRate = math.MaxUint32 + 1

	if _, err := buildConfig([]string{"440"}); err == nil {
		t.Fatal("expected an error for a sample rate above 32 bits")
	} else if !strings.Contains(err.Error(), "-sample-rate") {
		t.Errorf("error %q does not name the flag", err)
	}
}

func TestBuildConfigAcceptsMaximumDuration(t *testing.T) {
	oldDuration := *durationMs
	defer func() { *durationMs = oldDuration }()

	*durationMs = math.MaxUint32

	cfg, err := buildConfig([]string{"440"})
	if err != nil {
		t.Fatalf("buildConfig returned error: %v", err)
	}
	if cfg.DurationMs != math.MaxUint32 {
		t.Errorf("DurationMs = %d, want %d", cfg.DurationMs, uint64(math.MaxUint32))
	}
}

func TestBuildConfigRejectsFrequenciesWithInputFile(t *testing.T) {
	oldFrom := *fromPath
	defer func() { *fromPath = oldFrom }()

	*fromPath = "input.mp3"

	if _, err := buildConfig([]string{"440"}); err == nil {
		t.Fatal("expected an error for frequency arguments alongside -from")
	} else if !strings.Contains(err.Error(), "-from") {
		t.Errorf("error %q does not name -from", err)
	}
}

func TestBuildConfigAllowsInputFileWithoutFrequencies(t *testing.T) {
	oldFrom := *fromPath
	defer func() { *fromPath = oldFrom }()

	*fromPath = "input.mp3"

	if _, err := buildConfig(nil); err != nil {
		t.Fatalf("buildConfig returned error: %v", err)
	}
}
