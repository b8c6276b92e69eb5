// ABOUTME: WAV append path
// ABOUTME: Validates an existing file's header, then extends its payload in place
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Append extends an existing WAV file with additional samples. The file's
// header is read back and every field verified before any byte is rewritten,
// so a file that fails validation is left untouched. On success the RIFF and
// data size fields are updated in place and the new samples are written
// after the existing payload in the same encoding as Write.
//
// The read-verify-rewrite sequence is not atomic: Append assumes it is the
// only writer for the duration of the call.
func Append(f io.ReadWriteSeeker, samples []int16, sampleRate uint32) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to header: %w", err)
	}
	header, err := ReadHeader(f)
	if err != nil {
		return err
	}
	if err := header.Validate(sampleRate); err != nil {
		return err
	}

	priorPayload := header.RiffSize - riffSizeBase
	newPayload := uint32(len(samples)) * BytesPerSample
	if uint64(priorPayload)+uint64(newPayload) > math.MaxUint32-riffSizeBase {
		return &OverflowError{PriorBytes: priorPayload, NewBytes: newPayload}
	}

	// All checks passed; the file is mutated only below this point.
	if err := writeSizeField(f, riffSizeOffset, riffSizeBase+priorPayload+newPayload); err != nil {
		return err
	}
	if err := writeSizeField(f, dataSizeOffset, priorPayload+newPayload); err != nil {
		return err
	}
	if _, err := f.Seek(int64(HeaderSize)+int64(priorPayload), io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek past existing payload: %w", err)
	}
	return writeSamples(f, samples)
}

// OverflowError reports an append whose combined payload no longer fits the
// container's 32-bit size fields.
type OverflowError struct {
	PriorBytes uint32
	NewBytes   uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("appending %d payload bytes to %d existing bytes exceeds the WAVE format size limit", e.NewBytes, e.PriorBytes)
}

func writeSizeField(f io.ReadWriteSeeker, offset int64, value uint32) error {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to size field at offset %d: %w", offset, err)
	}
	if err := binary.Write(f, binary.LittleEndian, value); err != nil {
		return fmt.Errorf("failed to rewrite size field at offset %d: %w", offset, err)
	}
	return nil
}
