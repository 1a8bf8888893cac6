/*
NAME
  png.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package store

import (
	"math"

	"gocv.io/x/gocv"

	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/tlc/tlcerr"
)

// jetTable is the fixed 256-entry Jet colormap (spec §6), BGR byte triples
// to match gocv's native channel order. Computed once from the classic
// four-piece Jet ramp rather than transcribed as a literal table.
var jetTable = buildJet()

func buildJet() [256][3]byte {
	var t [256][3]byte
	ramp := func(x float64) float64 {
		switch {
		case x < -0.75:
			return 0
		case x < -0.25:
			return (x + 0.75) / 0.5
		case x < 0.25:
			return 1
		case x < 0.75:
			return (0.75 - x) / 0.5
		default:
			return 0
		}
	}
	for i := 0; i < 256; i++ {
		x := float64(i)/127.5 - 1 // maps [0,255] to [-1,1]
		r := clamp01(ramp(x - 0.5))
		g := clamp01(ramp(x))
		b := clamp01(ramp(x + 0.5))
		t[i] = [3]byte{byte(b*255 + 0.5), byte(g*255 + 0.5), byte(r*255 + 0.5)} // BGR
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WriteNuPNG renders nu as a Jet-colormap image at path, sized (w, h) to
// match area (spec §6). If vmin/vmax are both zero, they're computed as the
// finite min/max of nu. NaN pixels render white.
func WriteNuPNG(path string, nu *mat.Dense, vmin, vmax float64) error {
	rows, cols := nu.Dims()
	if vmin == 0 && vmax == 0 {
		vmin, vmax = finiteRange(nu)
	}

	buf := make([]byte, rows*cols*3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := nu.At(r, c)
			off := (r*cols + c) * 3
			if math.IsNaN(v) {
				buf[off], buf[off+1], buf[off+2] = 255, 255, 255
				continue
			}
			idx := int(clamp01((v-vmin)/(vmax-vmin)) * 255)
			color := jetTable[idx]
			buf[off], buf[off+1], buf[off+2] = color[0], color[1], color[2]
		}
	}

	m, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, buf)
	if err != nil {
		return tlcerr.New(tlcerr.IoFailure, "store: build nu plot mat: %v", err)
	}
	defer m.Close()

	if ok := gocv.IMWrite(path, m); !ok {
		return tlcerr.New(tlcerr.IoFailure, "store: write nu plot %q", path)
	}
	return nil
}

func finiteRange(nu *mat.Dense) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	rows, cols := nu.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := nu.At(r, c)
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0, 1
	}
	return min, max
}
