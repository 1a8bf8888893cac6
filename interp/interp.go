/*
NAME
  interp.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package interp spatially interpolates sparse thermocouple temperatures
// into a dense temperature field over time (spec §4.6). An Interpolator is
// built once from the synchronized DAQ window and a set of thermocouples,
// then queried per-frame (for UI display) or per-pixel (for the solver).
package interp

import (
	"fmt"
	"sort"

	"github.com/ausocean/tlc/daq"
	"github.com/ausocean/tlc/region"
)

// Kind selects the interpolation geometry and extrapolation behaviour.
type Kind int

const (
	Horizontal Kind = iota
	HorizontalExtra
	Vertical
	VerticalExtra
	Bilinear
	BilinearExtra
)

// Method is an interpolation method and, for the bilinear variants, the
// (ny, nx) shape of the thermocouple grid.
type Method struct {
	Kind  Kind
	Shape [2]int // (ny, nx), only meaningful for Bilinear/BilinearExtra
}

func (m Method) extrapolates() bool {
	switch m.Kind {
	case HorizontalExtra, VerticalExtra, BilinearExtra:
		return true
	default:
		return false
	}
}

func (m Method) is1D() bool {
	switch m.Kind {
	case Horizontal, HorizontalExtra, Vertical, VerticalExtra:
		return true
	default:
		return false
	}
}

// Interpolator materializes the temperature at any (frame, pixel) within a
// synchronized calibration window (spec §4.6).
type Interpolator struct {
	startRow int
	calNum   int
	area     region.Area
	method   Method

	axis1D *axis1D // set when method.is1D()
	grid   *grid   // set for Bilinear/BilinearExtra
}

// New builds an Interpolator from startRow, calNum, area, method, the
// thermocouple placements, and the DAQ table they index into.
func New(startRow, calNum int, area region.Area, method Method, tcs []region.Thermocouple, d *daq.Data) (*Interpolator, error) {
	nrows, ncols := d.Dims()
	if startRow < 0 || startRow+calNum > nrows {
		return nil, fmt.Errorf("interp: window [%d, %d) exceeds %d DAQ rows", startRow, startRow+calNum, nrows)
	}
	for _, tc := range tcs {
		if tc.ColumnIndex < 0 || tc.ColumnIndex >= ncols {
			return nil, fmt.Errorf("interp: thermocouple column %d out of range [0, %d)", tc.ColumnIndex, ncols)
		}
	}

	it := &Interpolator{startRow: startRow, calNum: calNum, area: area, method: method}

	if method.is1D() {
		a, err := newAxis1D(tcs, d, startRow, calNum, coordFor(method), method.extrapolates())
		if err != nil {
			return nil, err
		}
		it.axis1D = a
		return it, nil
	}

	g, err := newGrid(tcs, d, startRow, calNum, method.Shape, method.extrapolates())
	if err != nil {
		return nil, err
	}
	it.grid = g
	return it, nil
}

// coordFor returns the coordinate accessor used by the 1-D methods:
// Horizontal(Extra) interpolates along x, Vertical(Extra) along y.
func coordFor(m Method) func(region.Thermocouple) float64 {
	switch m.Kind {
	case Horizontal, HorizontalExtra:
		return func(tc region.Thermocouple) float64 { return float64(tc.X) }
	default:
		return func(tc region.Thermocouple) float64 { return float64(tc.Y) }
	}
}

// InterpPoint returns the temperature history (length calNum) at pixel,
// where pixel = area.Index(y, x) for y in [0, area.H), x in [0, area.W).
func (it *Interpolator) InterpPoint(pixel int) []float64 {
	y := pixel / it.area.W
	x := pixel % it.area.W
	videoY := float64(it.area.TopY + y)
	videoX := float64(it.area.TopX + x)

	if it.axis1D != nil {
		q := videoX
		if it.method.Kind == Vertical || it.method.Kind == VerticalExtra {
			q = videoY
		}
		return it.axis1D.at(q, it.calNum)
	}
	return it.grid.at(videoY, videoX, it.calNum)
}

// InterpFrame materializes the whole frame at frameIndex as an (h, w) row-
// major slice, for UI display.
func (it *Interpolator) InterpFrame(frameIndex int) ([]float64, error) {
	if frameIndex < 0 || frameIndex >= it.calNum {
		return nil, fmt.Errorf("interp: frame_index %d exceeds cal_num %d", frameIndex, it.calNum)
	}
	h, w := it.area.H, it.area.W
	out := make([]float64, h*w)
	for p := 0; p < h*w; p++ {
		out[p] = it.InterpPoint(p)[frameIndex]
	}
	return out, nil
}

// sortByCoord sorts thermocouples and their parallel temperature series by
// an ascending coordinate key, matching the original slice order of tcs.
func sortByCoord(tcs []region.Thermocouple, series [][]float64, coord func(region.Thermocouple) float64) {
	idx := make([]int, len(tcs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return coord(tcs[idx[a]]) < coord(tcs[idx[b]]) })

	sortedTCs := make([]region.Thermocouple, len(tcs))
	sortedSeries := make([][]float64, len(series))
	for newPos, oldPos := range idx {
		sortedTCs[newPos] = tcs[oldPos]
		sortedSeries[newPos] = series[oldPos]
	}
	copy(tcs, sortedTCs)
	copy(series, sortedSeries)
}
