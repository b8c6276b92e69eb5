// ABOUTME: Entry point for the wavinfo header inspector
// ABOUTME: Dumps and checks the fixed 44-byte header of a WAV file
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soundgen/soundgen-go/pkg/wav"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wavinfo file.wav [file.wav ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := dump(path); err != nil {
			log.Fatalf("Error: %s: %v", path, err)
		}
	}
}

func dump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header, err := wav.ReadHeader(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  container tag:    %q\n", string(header.RiffID[:]))
	fmt.Printf("  riff size:        %d\n", header.RiffSize)
	fmt.Printf("  format tag:       %q\n", string(header.WaveID[:]))
	fmt.Printf("  fmt tag:          %q (size %d)\n", string(header.FmtID[:]), header.FmtSize)
	fmt.Printf("  audio format:     %d\n", header.AudioFormat)
	fmt.Printf("  channels:         %d\n", header.NumChannels)
	fmt.Printf("  sample rate:      %d Hz\n", header.SampleRate)
	fmt.Printf("  byte rate:        %d\n", header.ByteRate)
	fmt.Printf("  block alignment:  %d\n", header.BlockAlign)
	fmt.Printf("  bits per sample:  %d\n", header.BitsPerSample)
	fmt.Printf("  data tag:         %q\n", string(header.DataID[:]))
	fmt.Printf("  data size:        %d bytes (%d samples, %d ms)\n",
		header.DataSize, header.SampleCount(), header.Duration())

	// Consistency check against the file's own sample rate.
	if err := header.Validate(header.SampleRate); err != nil {
		fmt.Printf("  header check:     FAILED: %v\n", err)
	} else {
		fmt.Printf("  header check:     ok\n")
	}
	return nil
}
