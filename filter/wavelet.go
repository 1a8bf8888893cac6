/*
NAME
  wavelet.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package filter

import "math"

// db8Lo is the Daubechies-8 (16-tap) orthogonal scaling (low-pass)
// decomposition filter, horizontally flipped from the pywavelets
// 'db8' reference filter bank, matching spec §4.5.
var db8Lo = [16]float64{
	-0.00011747678400228192,
	0.0006754494059985568,
	-0.0003917403729959771,
	-0.00487035299301066,
	0.008746094047015655,
	0.013981027917015516,
	-0.04408825393106472,
	-0.01736930100202211,
	0.128747426620186,
	0.00047248457399797254,
	-0.2840155429624281,
	-0.015829105256023893,
	0.5853546836548691,
	0.6756307362980128,
	0.3128715909144659,
	0.05441584224308161,
}

// db8Hi is the corresponding high-pass decomposition filter, derived from
// db8Lo via the quadrature-mirror relation that holds for every orthogonal
// wavelet: hi[n] = (-1)^n * lo[N-1-n].
var db8Hi = computeHi(db8Lo)

func computeHi(lo [16]float64) [16]float64 {
	var hi [16]float64
	n := len(lo)
	for i := 0; i < n; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		hi[i] = sign * lo[n-1-i]
	}
	return hi
}

// maxDyadicLevel returns the maximum wavelet decomposition level supported
// by a signal of length n with a filter of length filterLen, following the
// common convention level = floor(log2(n / (filterLen - 1))).
func maxDyadicLevel(n, filterLen int) int {
	if filterLen < 2 || n < filterLen-1 {
		return 0
	}
	level := 0
	for q := n / (filterLen - 1); q > 1; q /= 2 {
		level++
	}
	return level
}

// dwtDecompose performs one level of a symmetric-extension discrete wavelet
// transform, returning (approximation, detail) each of length
// ceil(len(x)/2).
func dwtDecompose(x []float64) (approx, detail []float64) {
	n := len(x)
	out := (n + 1) / 2
	approx = make([]float64, out)
	detail = make([]float64, out)

	taps := len(db8Lo)
	for i := 0; i < out; i++ {
		var a, d float64
		base := 2*i - taps/2 + 1
		for k := 0; k < taps; k++ {
			idx := reflect(base+k, n)
			a += db8Lo[k] * x[idx]
			d += db8Hi[k] * x[idx]
		}
		approx[i] = a
		detail[i] = d
	}
	return approx, detail
}

// dwtReconstruct inverts dwtDecompose, producing a signal of length n.
func dwtReconstruct(approx, detail []float64, n int) []float64 {
	out := make([]float64, n)
	taps := len(db8Lo)
	for i := range approx {
		base := 2*i - taps/2 + 1
		for k := 0; k < taps; k++ {
			idx := base + k
			if idx < 0 || idx >= n {
				continue
			}
			out[idx] += db8Lo[k]*approx[i] + db8Hi[k]*detail[i]
		}
	}
	return out
}

// reflect maps an out-of-range index into [0, n) by symmetric reflection,
// the usual boundary handling for wavelet transforms.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// waveletDenoise applies a multi-level Daubechies-8 decomposition, soft
// thresholds each level's detail coefficients at thresholdRatio times that
// level's maximum absolute coefficient, reconstructs, and rounds back to
// bytes (spec §4.5).
func waveletDenoise(signal []byte, thresholdRatio float64) []byte {
	n := len(signal)
	x := make([]float64, n)
	for i, v := range signal {
		x[i] = float64(v)
	}

	level := maxDyadicLevel(n, len(db8Lo))
	if level == 0 {
		return append([]byte(nil), signal...)
	}

	type stage struct {
		detail []float64
		n      int
	}
	stages := make([]stage, 0, level)
	cur := x
	for l := 0; l < level; l++ {
		approx, detail := dwtDecompose(cur)
		stages = append(stages, stage{detail: detail, n: len(cur)})
		cur = approx
	}

	for i := len(stages) - 1; i >= 0; i-- {
		detail := softThreshold(stages[i].detail, thresholdRatio)
		cur = dwtReconstruct(cur, detail, stages[i].n)
	}

	out := make([]byte, n)
	for i, v := range cur {
		out[i] = clampByte(math.Round(v))
	}
	return out
}

func softThreshold(coeffs []float64, ratio float64) []float64 {
	maxAbs := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	thresh := ratio * maxAbs

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		switch {
		case c > thresh:
			out[i] = c - thresh
		case c < -thresh:
			out[i] = c + thresh
		default:
			out[i] = 0
		}
	}
	return out
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
