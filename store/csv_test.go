package store

import (
	"bytes"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCSVRoundTrip(t *testing.T) {
	in := mat.NewDense(2, 3, []float64{1, 2, math.NaN(), 4, 5, 6})

	var buf bytes.Buffer
	if err := WriteNuCSV(&buf, in); err != nil {
		t.Fatalf("WriteNuCSV: %v", err)
	}

	out, err := ReadNuCSV(&buf)
	if err != nil {
		t.Fatalf("ReadNuCSV: %v", err)
	}

	rows, cols := in.Dims()
	outRows, outCols := out.Dims()
	if rows != outRows || cols != outCols {
		t.Fatalf("shape mismatch: got (%d,%d), want (%d,%d)", outRows, outCols, rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a, b := in.At(r, c), out.At(r, c)
			if math.IsNaN(a) && math.IsNaN(b) {
				continue
			}
			if a != b {
				t.Errorf("(%d,%d): got %v, want %v", r, c, b, a)
			}
		}
	}
}
