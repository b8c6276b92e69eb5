// ABOUTME: Fixed-layout WAV header model and validation
// ABOUTME: Defines the 44-byte header struct and per-field consistency checks
package wav

import "fmt"

const (
	// HeaderSize is the fixed length of the container header in bytes.
	HeaderSize = 44

	// BytesPerSample is the width of one stored sample.
	BytesPerSample = 2

	riffTag = "RIFF"
	waveTag = "WAVE"
	fmtTag  = "fmt "
	dataTag = "data"

	fmtChunkSize   = 16
	audioFormatPCM = 1
	channelCount   = 1
	bitsPerSample  = 16
	blockAlign     = channelCount * bitsPerSample / 8

	// riffSizeBase is the RIFF chunk size of a file with an empty payload:
	// "WAVE" plus both subchunk headers plus the fmt block.
	riffSizeBase = 36

	riffSizeOffset = 4
	dataSizeOffset = 40
)

// Header is the complete fixed-layout WAV header. Field order and widths
// match the on-disk layout exactly, so the struct serializes directly with
// encoding/binary in little-endian order (the 4-byte tags are raw ASCII and
// unaffected by byte order).
type Header struct {
	RiffID   [4]byte // "RIFF"
	RiffSize uint32  // 36 + DataSize
	WaveID   [4]byte // "WAVE"

	FmtID         [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = uncompressed PCM
	NumChannels   uint16  // 1, mono only
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16 // NumChannels * BitsPerSample/8
	BitsPerSample uint16 // 16

	DataID   [4]byte // "data"
	DataSize uint32  // sample count * NumChannels * BitsPerSample/8
}

// NewHeader builds a mutually consistent header for a fresh mono 16-bit file
// holding sampleCount samples at sampleRate.
func NewHeader(sampleCount, sampleRate uint32) Header {
	dataSize := sampleCount * channelCount * BytesPerSample
	return Header{
		RiffID:        tag(riffTag),
		RiffSize:      riffSizeBase + dataSize,
		WaveID:        tag(waveTag),
		FmtID:         tag(fmtTag),
		FmtSize:       fmtChunkSize,
		AudioFormat:   audioFormatPCM,
		NumChannels:   channelCount,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * channelCount * bitsPerSample / 8,
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		DataID:        tag(dataTag),
		DataSize:      dataSize,
	}
}

// CorruptHeaderError reports the first header field that failed validation.
type CorruptHeaderError struct {
	Field string
	Want  interface{}
	Got   interface{}
}

func (e *CorruptHeaderError) Error() string {
	return fmt.Sprintf("corrupt WAV header: %s: expected %v, found %v", e.Field, e.Want, e.Got)
}

// Validate checks every fixed-value field against its expected value, the
// sample rate against the rate requested for this run, and the payload size
// field against the size derived from the RIFF chunk size. The first
// mismatch is returned as a *CorruptHeaderError; a nil return means the
// header describes a mono 16-bit PCM file this codec can extend.
func (h *Header) Validate(sampleRate uint32) error {
	if got := string(h.RiffID[:]); got != riffTag {
		return &CorruptHeaderError{Field: "container tag", Want: riffTag, Got: got}
	}
	if got := string(h.WaveID[:]); got != waveTag {
		return &CorruptHeaderError{Field: "format tag", Want: waveTag, Got: got}
	}
	if got := string(h.FmtID[:]); got != fmtTag {
		return &CorruptHeaderError{Field: "fmt subchunk tag", Want: fmtTag, Got: got}
	}
	if h.FmtSize != fmtChunkSize {
		return &CorruptHeaderError{Field: "fmt subchunk size", Want: uint32(fmtChunkSize), Got: h.FmtSize}
	}
	if h.AudioFormat != audioFormatPCM {
		return &CorruptHeaderError{Field: "audio format", Want: uint16(audioFormatPCM), Got: h.AudioFormat}
	}
	if h.NumChannels != channelCount {
		return &CorruptHeaderError{Field: "channel count", Want: uint16(channelCount), Got: h.NumChannels}
	}
	if h.SampleRate != sampleRate {
		return &CorruptHeaderError{Field: "sample rate", Want: sampleRate, Got: h.SampleRate}
	}
	wantByteRate := sampleRate * channelCount * bitsPerSample / 8
	if h.ByteRate != wantByteRate {
		return &CorruptHeaderError{Field: "byte rate", Want: wantByteRate, Got: h.ByteRate}
	}
	if h.BlockAlign != blockAlign {
		return &CorruptHeaderError{Field: "block alignment", Want: uint16(blockAlign), Got: h.BlockAlign}
	}
	if h.BitsPerSample != bitsPerSample {
		return &CorruptHeaderError{Field: "bits per sample", Want: uint16(bitsPerSample), Got: h.BitsPerSample}
	}
	if got := string(h.DataID[:]); got != dataTag {
		return &CorruptHeaderError{Field: "data subchunk tag", Want: dataTag, Got: got}
	}
	if h.RiffSize < riffSizeBase {
		return &CorruptHeaderError{Field: "riff chunk size", Want: fmt.Sprintf(">= %d", riffSizeBase), Got: h.RiffSize}
	}
	if derived := h.RiffSize - riffSizeBase; h.DataSize != derived {
		return &CorruptHeaderError{Field: "data subchunk size", Want: derived, Got: h.DataSize}
	}
	return nil
}

func tag(s string) [4]byte {
	var t [4]byte
	copy(t[:], s)
	return t
}
