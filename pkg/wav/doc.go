// ABOUTME: WAV container codec package documentation
// ABOUTME: Describes the fixed-layout header model, write and append paths
// Package wav reads, writes and extends canonical 44-byte WAV containers
// holding monaural 16-bit little-endian PCM.
//
// The container layout is fixed: a RIFF chunk, one "fmt " subchunk of 16
// bytes describing uncompressed PCM, and one "data" subchunk holding the
// payload. Write produces a complete file; Append validates every header
// field of an existing file before rewriting its size fields and extending
// the payload, so a file that fails validation is never modified.
//
// Example:
//
//	err := wav.Write(f, samples, 44100)
//	err = wav.Append(f, moreSamples, 44100)
package wav
