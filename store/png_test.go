package store

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func buildTestMatrix() *mat.Dense {
	return mat.NewDense(2, 2, []float64{1, 9, math.NaN(), 5})
}

func TestJetTableEndpointsAndMidpoint(t *testing.T) {
	lo := jetTable[0]
	hi := jetTable[255]
	mid := jetTable[127]

	// Cold end is blue-dominant, warm end is red-dominant (BGR order).
	if lo[0] == 0 {
		t.Errorf("jetTable[0] blue channel is 0, want the cold end to be blue-dominant: %v", lo)
	}
	if hi[2] == 0 {
		t.Errorf("jetTable[255] red channel is 0, want the warm end to be red-dominant: %v", hi)
	}
	if mid[1] == 0 {
		t.Errorf("jetTable[127] green channel is 0, want the midpoint to be green-dominant: %v", mid)
	}
}

func TestFiniteRangeIgnoresNaN(t *testing.T) {
	nu := buildTestMatrix()
	min, max := finiteRange(nu)
	if min != 1 || max != 9 {
		t.Errorf("finiteRange = (%v, %v), want (1, 9)", min, max)
	}
}
