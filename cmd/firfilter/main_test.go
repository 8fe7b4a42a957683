package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/filter/fir"
	"github.com/cwbudde/algo-fir/dsp/window"
	"github.com/cwbudde/algo-fir/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignBuild(t *testing.T) {
	tests := []struct {
		name string
		d    design
		kind fir.Kind
	}{
		{"lowpass", design{kind: "lowpass", cutoff: 1000, taps: 31, window: window.TypeHamming}, fir.KindLowpass},
		{"highpass", design{kind: "highpass", cutoff: 1000, taps: 31, window: window.TypeBlackman}, fir.KindHighpass},
		{"bandpass", design{kind: "bandpass", low: 2000, high: 8000, taps: 31, window: window.TypeHanning}, fir.KindBandpass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.d.build(44100)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, f.Kind())
			assert.Equal(t, 31, f.Size())
		})
	}
}

func TestDesignBuild_Errors(t *testing.T) {
	_, err := design{kind: "notch", cutoff: 1000, taps: 31}.build(44100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter type")

	// 30 kHz is above Nyquist at 44.1 kHz.
	_, err = design{kind: "lowpass", cutoff: 30000, taps: 31}.build(44100)
	require.ErrorIs(t, err, fir.ErrInvalidParameterValue)

	_, err = design{kind: "lowpass", cutoff: 1000, taps: 30}.build(44100)
	require.ErrorIs(t, err, fir.ErrInvalidSize)

	_, err = design{kind: "bandpass", low: 5000, high: 1000, taps: 31}.build(44100)
	require.ErrorIs(t, err, fir.ErrInvalidParameterOrder)
}

func TestFilterChannels_TrimsGroupDelay(t *testing.T) {
	f, err := fir.NewLowpass(0.1, 21, fir.WithWindow(window.TypeHamming))
	require.NoError(t, err)

	in := [][]float64{testutil.DC(1, 200), testutil.Impulse(200, 50)}
	out, err := filterChannels(f, in, false)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for ch := range out {
		assert.Len(t, out[ch], 200)
	}

	// Unity DC gain away from the edges.
	for i := 20; i < 180; i++ {
		assert.InDelta(t, 1.0, out[0][i], 1e-12)
	}

	// The impulse response is centered on the input impulse.
	taps := f.Coefficients()
	for k, c := range taps {
		assert.InDelta(t, c, out[1][50-10+k], 1e-15)
	}
}

func TestFilterChannels_Full(t *testing.T) {
	f, err := fir.NewLowpass(0.2, 11)
	require.NoError(t, err)

	out, err := filterChannels(f, [][]float64{testutil.Ramp(40)}, true)
	require.NoError(t, err)
	assert.Len(t, out[0], 40+11-1)
}

func TestFilterChannels_EmptyChannel(t *testing.T) {
	f, err := fir.NewLowpass(0.2, 11)
	require.NoError(t, err)

	_, err = filterChannels(f, [][]float64{{}}, false)
	require.ErrorIs(t, err, fir.ErrInvalidSize)
	assert.Contains(t, err.Error(), "channel 0")
}

func TestPrintFilter(t *testing.T) {
	f, err := fir.NewLowpass(0.25, 5)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printFilter(&out, f))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1+5+2)
	assert.Equal(t, "Lowpass filter, 5 taps", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  h[0] = "))
	assert.True(t, strings.HasSuffix(lines[6], "0.00 dB"), lines[6])
}

func TestFrames(t *testing.T) {
	assert.Equal(t, 0, frames(nil))
	assert.Equal(t, 3, frames([][]float64{{1, 2, 3}, {4, 5, 6}}))
}
