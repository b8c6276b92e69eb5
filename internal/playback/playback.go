// ABOUTME: One-shot audio playback sink
// ABOUTME: Renders a sample buffer through the default device using oto
package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Play renders a mono 16-bit sample buffer through the default audio device
// and blocks until playback finishes. oto allows one context per process, so
// Play is intended for a single call per run.
func Play(samples []int16, sampleRate uint32) error {
	if len(samples) == 0 {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create audio context: %w", err)
	}
	<-readyChan

	data := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(sample))
	}

	log.Printf("Playing %d samples at %d Hz", len(samples), sampleRate)

	player := ctx.NewPlayer(bytes.NewReader(data))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}
	return nil
}
