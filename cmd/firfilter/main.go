// Command firfilter designs a windowed-sinc FIR filter and applies it to a
// WAV file.
//
// Usage:
//
//	firfilter -type lowpass -cutoff 1000 input.wav output.wav
//	firfilter -type highpass -cutoff 200 -taps 201 -window blackman in.wav out.wav
//	firfilter -type bandpass -low 300 -high 3400 in.wav out.wav
//	firfilter -type lowpass -cutoff 1000 -taps 31 -print
//
// The output keeps the input length: the group delay of (taps-1)/2 samples is
// removed from both ends unless -full is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/dsp/window"
	"github.com/cwbudde/algo-fir/stats/level"
)

const (
	defaultTaps       = 101
	defaultSampleRate = 44100
	minRequiredArgs   = 2
)

// design describes the filter requested on the command line, with cutoffs
// in Hz.
type design struct {
	kind   string
	cutoff float64
	low    float64
	high   float64
	taps   int
	window window.Type
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	kind := flag.String("type", "lowpass", "Filter type: lowpass, highpass, bandpass")
	cutoff := flag.Float64("cutoff", 1000, "Cutoff frequency in Hz (lowpass, highpass)")
	low := flag.Float64("low", 300, "Lower band edge in Hz (bandpass)")
	high := flag.Float64("high", 3400, "Upper band edge in Hz (bandpass)")
	taps := flag.Int("taps", defaultTaps, "Number of taps (odd)")
	windowName := flag.String("window", "hamming", "Window: rectangular, hamming, hanning, blackman")
	full := flag.Bool("full", false, "Write the full convolution instead of trimming the group delay")
	printTaps := flag.Bool("print", false, "Print the taps and edge gains instead of filtering a file")
	rate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz used with -print")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	win, err := window.ParseType(*windowName)
	if err != nil {
		return err
	}

	d := design{
		kind:   strings.ToLower(*kind),
		cutoff: *cutoff,
		low:    *low,
		high:   *high,
		taps:   *taps,
		window: win,
	}

	if *printTaps {
		f, err := d.build(float64(*rate))
		if err != nil {
			return err
		}
		return printFilter(os.Stdout, f)
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -type lowpass -cutoff 1000 in.wav out.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type bandpass -low 300 -high 3400 speech.wav band.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type highpass -cutoff 80 -taps 31 -print\n", os.Args[0])
		return errors.New("insufficient arguments")
	}

	inputPath, outputPath := args[0], args[1]

	in, err := readWAV(inputPath)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Format: %d Hz, %d channels, %d-bit", in.sampleRate, len(in.channels), in.bitDepth)
		log.Printf("Filter: %s, %d taps, %s window", d.kind, d.taps, d.window)
	}

	f, err := d.build(float64(in.sampleRate))
	if err != nil {
		return err
	}

	out, err := filterChannels(f, in.channels, *full)
	if err != nil {
		return err
	}

	if *verbose {
		logLevels(in.channels, out)
		if p := peak(out); p > 1 {
			log.Printf("Output peak %.3f exceeds full scale and will be clipped", p)
		}
	}

	if err := writeWAV(outputPath, &pcmAudio{
		sampleRate: in.sampleRate,
		bitDepth:   in.bitDepth,
		channels:   out,
	}); err != nil {
		return err
	}

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s, %d taps, %s window\n", f.Kind(), f.Size(), d.window)
	fmt.Printf("  %d samples -> %d samples\n", frames(in.channels), frames(out))

	return nil
}

// build converts the cutoffs to cycles per sample and designs the filter.
func (d design) build(sampleRate float64) (*fir.Filter, error) {
	opt := fir.WithWindow(d.window)

	switch d.kind {
	case "lowpass":
		return fir.NewLowpass(core.NormalizedFrequency(d.cutoff, sampleRate), d.taps, opt)
	case "highpass":
		return fir.NewHighpass(core.NormalizedFrequency(d.cutoff, sampleRate), d.taps, opt)
	case "bandpass":
		return fir.NewBandpass(
			core.NormalizedFrequency(d.low, sampleRate),
			core.NormalizedFrequency(d.high, sampleRate),
			d.taps, opt,
		)
	default:
		return nil, fmt.Errorf("unknown filter type %q", d.kind)
	}
}

// filterChannels convolves every channel with f. Unless full is set, the
// (size-1)/2 samples of group delay are dropped from both ends so each
// output channel is aligned with and as long as its input.
func filterChannels(f *fir.Filter, channels [][]float64, full bool) ([][]float64, error) {
	delay := (f.Size() - 1) / 2
	out := make([][]float64, len(channels))

	for ch, samples := range channels {
		y, err := f.Convolve(samples)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		if !full {
			y = y[delay : delay+len(samples)]
		}
		out[ch] = y
	}

	return out, nil
}

func printFilter(w io.Writer, f *fir.Filter) error {
	if _, err := fmt.Fprintf(w, "%s filter, %d taps\n", f.Kind(), f.Size()); err != nil {
		return err
	}
	for i, c := range f.Coefficients() {
		if _, err := fmt.Fprintf(w, "  h[%d] = % .12f\n", i, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "DC: %.2f dB\nNyquist: %.2f dB\n", f.MagnitudeDB(0), f.MagnitudeDB(0.5))
	return err
}

func logLevels(in, out [][]float64) {
	for ch := range in {
		si := level.Calculate(in[ch])
		so := level.Calculate(out[ch])
		log.Printf("Channel %d: RMS %.1f -> %.1f dBFS, peak %.1f -> %.1f dBFS, gain %.2f dB",
			ch, si.RMS_dB, so.RMS_dB, si.Peak_dB, so.Peak_dB, level.GainDB(in[ch], out[ch]))
	}
}

func frames(channels [][]float64) int {
	if len(channels) == 0 {
		return 0
	}
	return len(channels[0])
}
