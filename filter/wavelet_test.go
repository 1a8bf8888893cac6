package filter

import (
	"context"
	"testing"

	"github.com/ausocean/tlc/progress"
)

// TestEmptyWaveletScenario reproduces spec §8 scenario 1: on a 2x2 matrix
// too short for even one wavelet decomposition level, the wavelet filter
// degrades to identity, so the peak detector's first-max tie-break alone
// determines the result: result[0] == 0, result[1] == 1.
func TestEmptyWaveletScenario(t *testing.T) {
	g := green2FromCols(2, [][]byte{{5, 4}, {3, 5}})
	method, err := NewWavelet(0.8)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DetectPeak(context.Background(), new(progress.Bar), g, method)
	if err != nil {
		t.Fatalf("DetectPeak: %v", err)
	}
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("got %v, want [0, 1]", got)
	}
}

func TestMaxDyadicLevel(t *testing.T) {
	if lvl := maxDyadicLevel(2, 16); lvl != 0 {
		t.Errorf("maxDyadicLevel(2, 16) = %d, want 0", lvl)
	}
	if lvl := maxDyadicLevel(256, 16); lvl <= 0 {
		t.Errorf("maxDyadicLevel(256, 16) = %d, want > 0", lvl)
	}
}

func TestWaveletDenoiseShortSignalIsIdentity(t *testing.T) {
	in := []byte{10, 200}
	out := waveletDenoise(in, 0.8)
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: got %d, want %d (identity for too-short signal)", i, out[i], in[i])
		}
	}
}
