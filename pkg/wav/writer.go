// ABOUTME: WAV write path
// ABOUTME: Serializes a header and 16-bit PCM payload to an output stream
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Write emits a complete WAV file on w: the 44-byte header followed by each
// sample as a 2-byte little-endian signed integer. Any sink error is
// returned immediately; there is no partial-success result.
func Write(w io.Writer, samples []int16, sampleRate uint32) error {
	header := NewHeader(uint32(len(samples)), sampleRate)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := writeSamples(w, samples); err != nil {
		return err
	}
	return nil
}

// writeSamples serializes the payload as little-endian int16.
func writeSamples(w io.Writer, samples []int16) error {
	payload := make([]byte, len(samples)*BytesPerSample)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(payload[i*BytesPerSample:], uint16(sample))
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write sample payload: %w", err)
	}
	return nil
}
