// ABOUTME: WAV header read path
// ABOUTME: Deserializes the fixed 44-byte header from an input stream
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadHeader deserializes the fixed 44-byte header from the current position
// of r. It performs no validation; callers decide which checks apply.
func ReadHeader(r io.Reader) (Header, error) {
	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return Header{}, fmt.Errorf("failed to read WAV header: %w", err)
	}
	return header, nil
}

// SampleCount returns the number of samples the payload holds.
func (h *Header) SampleCount() uint32 {
	return h.DataSize / (channelCount * BytesPerSample)
}

// Duration returns the payload length in whole milliseconds, or 0 for a
// header with no sample rate.
func (h *Header) Duration() uint64 {
	if h.SampleRate == 0 {
		return 0
	}
	return uint64(h.SampleCount()) * 1000 / uint64(h.SampleRate)
}
