package filter

import (
	"context"
	"testing"

	"github.com/ausocean/tlc/progress"
	"github.com/ausocean/tlc/region"
	"github.com/ausocean/tlc/video"
)

func green2FromCols(calNum int, cols [][]byte) *video.Green2 {
	area := region.Area{H: 1, W: len(cols)}
	data := make([]byte, calNum*len(cols))
	for frame := 0; frame < calNum; frame++ {
		for p, col := range cols {
			data[frame*len(cols)+p] = col[frame]
		}
	}
	return video.NewGreen2(calNum, area, data)
}

func TestDetectPeakNoFilterFirstMax(t *testing.T) {
	g := green2FromCols(3, [][]byte{{5, 5, 3}, {1, 2, 2}})
	got, err := DetectPeak(context.Background(), new(progress.Bar), g, NewNo())
	if err != nil {
		t.Fatalf("DetectPeak: %v", err)
	}
	want := []int{0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArgmaxFirstTieBreak(t *testing.T) {
	if got := argmaxFirst([]byte{1, 9, 9, 0}); got != 1 {
		t.Errorf("argmaxFirst = %d, want 1", got)
	}
}

func TestMedianFilterIdentityWindowOne(t *testing.T) {
	in := []byte{3, 7, 2, 9}
	out := medianFilter(in, 1)
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d: got %d want %d", i, out[i], in[i])
		}
	}
}

func TestPointOutsideArea(t *testing.T) {
	g := green2FromCols(2, [][]byte{{1, 2}})
	if _, err := Point(g, NewNo(), 5, 5); err == nil {
		t.Fatal("expected BoundsViolation error")
	}
}

func TestMethodConstructorValidation(t *testing.T) {
	if _, err := NewMedian(0); err == nil {
		t.Error("expected error for window size 0")
	}
	if _, err := NewWavelet(0); err == nil {
		t.Error("expected error for ratio 0")
	}
	if _, err := NewWavelet(1.5); err == nil {
		t.Error("expected error for ratio > 1")
	}
}
