// ABOUTME: Decoded-file PCM sources for containerizing existing audio
// ABOUTME: Loads MP3 and FLAC files as mono 16-bit sample buffers
package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"
)

// Load decodes an audio file into a mono 16-bit sample buffer at the file's
// native sample rate. Multi-channel input is downmixed by averaging; the
// rate is never resampled, it is returned for the container header.
func Load(path string) ([]int16, uint32, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return loadMP3(path)
	case ".flac":
		return loadFLAC(path)
	default:
		return nil, 0, fmt.Errorf("unsupported input format: %s (supported: .mp3, .flac)", ext)
	}
}

// loadMP3 decodes a whole MP3 file. go-mp3 always yields interleaved stereo
// int16 little-endian at the stream's sample rate.
func loadMP3(path string) ([]int16, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode MP3: %w", err)
	}

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read MP3 stream: %w", err)
	}

	// Downmix stereo frames (4 bytes each) to mono.
	frames := len(data) / 4
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(data[i*4:]))
		right := int16(binary.LittleEndian.Uint16(data[i*4+2:]))
		samples[i] = int16((int32(left) + int32(right)) / 2)
	}

	log.Printf("Loaded MP3: %s (%d samples at %d Hz)", filepath.Base(path), frames, decoder.SampleRate())

	return samples, uint32(decoder.SampleRate()), nil
}

// loadFLAC decodes a whole FLAC file frame by frame, averaging channels and
// rescaling the source bit depth to 16 bits.
func loadFLAC(path string) ([]int16, uint32, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels == 0 {
		return nil, 0, fmt.Errorf("FLAC stream reports zero channels")
	}

	var samples []int16
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			var mixed int64
			for ch := 0; ch < channels; ch++ {
				mixed += int64(frame.Subframes[ch].Samples[i])
			}
			samples = append(samples, rescale(int32(mixed/int64(channels)), bitDepth))
		}
	}

	log.Printf("Loaded FLAC: %s (%d samples at %d Hz, %d-bit, %d channels)",
		filepath.Base(path), len(samples), info.SampleRate, bitDepth, channels)

	return samples, info.SampleRate, nil
}

// rescale shifts a sample of the given bit depth into 16-bit range.
func rescale(sample int32, bitDepth int) int16 {
	switch {
	case bitDepth == 16:
		return int16(sample)
	case bitDepth > 16:
		return int16(sample >> (bitDepth - 16))
	default:
		return int16(sample << (16 - bitDepth))
	}
}
