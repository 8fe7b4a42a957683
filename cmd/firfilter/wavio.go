package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)

var errUnsupportedBitDepth = errors.New("unsupported bit depth")

// pcmAudio is decoded audio as one [-1, 1] float slice per channel.
type pcmAudio struct {
	sampleRate int
	bitDepth   int
	channels   [][]float64
}

// maxValue returns the full-scale integer value for a PCM bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", errUnsupportedBitDepth, bitDepth)
	}
}

// readWAV decodes a whole PCM WAV file.
func readWAV(path string) (*pcmAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	numChannels := buf.Format.NumChannels
	if numChannels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d in %s", numChannels, path)
	}

	return &pcmAudio{
		sampleRate: buf.Format.SampleRate,
		bitDepth:   bitDepth,
		channels:   deinterleave(buf.Data, numChannels, maxVal),
	}, nil
}

// writeWAV encodes a as PCM, clipping samples to full scale.
func writeWAV(path string, a *pcmAudio) (err error) {
	maxVal, err := maxValue(a.bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	numChannels := len(a.channels)
	encoder := wav.NewEncoder(f, a.sampleRate, a.bitDepth, numChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  a.sampleRate,
		},
		Data:           interleave(a.channels, maxVal),
		SourceBitDepth: a.bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}

// deinterleave converts interleaved integer samples to per-channel floats
// scaled by 1/maxVal.
func deinterleave(data []int, numChannels int, maxVal float64) [][]float64 {
	frames := len(data) / numChannels
	result := make([][]float64, numChannels)
	for ch := range numChannels {
		result[ch] = make([]float64, frames)
	}

	for i := range frames {
		for ch := range numChannels {
			result[ch][i] = float64(data[i*numChannels+ch]) / maxVal
		}
	}

	return result
}

// interleave converts per-channel floats to interleaved integer samples,
// clamping to [-1, 1] before scaling by maxVal.
func interleave(channels [][]float64, maxVal float64) []int {
	if len(channels) == 0 {
		return nil
	}

	numChannels := len(channels)
	frames := len(channels[0])
	result := make([]int, frames*numChannels)

	for i := range frames {
		for ch := range numChannels {
			sample := math.Max(-1, math.Min(1, channels[ch][i]))
			result[i*numChannels+ch] = int(math.Round(sample * maxVal))
		}
	}

	return result
}

// peak returns the largest absolute sample over all channels.
func peak(channels [][]float64) float64 {
	var p float64
	for _, ch := range channels {
		if len(ch) == 0 {
			continue
		}
		p = max(p, floats.Max(ch), -floats.Min(ch))
	}
	return p
}
