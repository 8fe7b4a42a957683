// Command wininfo prints spectral properties of the FIR design windows.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman hamming
//	wininfo -size 9 -coeffs hamming
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/window"
)

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	all := flag.Bool("all", false, "show all window types")
	list := flag.Bool("list", false, "list available window names")
	coeffs := flag.Bool("coeffs", false, "print the window coefficients instead of the analysis")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of FIR design windows.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 9 -coeffs hamming\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "error: size must be > 0, got %d\n", *size)
		os.Exit(1)
	}

	names := flag.Args()
	if *all {
		names = nil
	}

	types := resolveTypes(names, os.Stderr)
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	var err error
	if *coeffs {
		err = printCoefficients(os.Stdout, types, *size)
	} else {
		err = printAnalysis(os.Stdout, types, *size)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, t := range window.Types() {
		fmt.Fprintln(w, strings.ToLower(t.String()))
	}
}

// resolveTypes maps names to window types. An empty list selects every
// type; unknown names are reported to warn and skipped.
func resolveTypes(names []string, warn io.Writer) []window.Type {
	if len(names) == 0 {
		return window.Types()
	}

	var result []window.Type
	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			fmt.Fprintf(warn, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, t)
	}
	return result
}

func printCoefficients(w io.Writer, types []window.Type, size int) error {
	for _, t := range types {
		if _, err := fmt.Fprintf(w, "%s (%d):\n", t, size); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for i, c := range window.Generate(t, size) {
			if _, err := fmt.Fprintf(w, "  %4d  % .12f\n", i, c); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func printAnalysis(w io.Writer, types []window.Type, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, t := range types {
		a := window.Analyze(window.Generate(t, size))

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			strings.ToLower(t.String()),
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
