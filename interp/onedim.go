/*
NAME
  onedim.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package interp

import (
	"fmt"
	"sort"

	"github.com/ausocean/tlc/daq"
	"github.com/ausocean/tlc/region"
)

// axis1D interpolates a temperature history along a single coordinate axis
// (the x axis for Horizontal(Extra), the y axis for Vertical(Extra)).
// Thermocouples are held sorted ascending by coord, each paired with its
// (calNum) temperature series sliced out of the DAQ table.
type axis1D struct {
	coords      []float64
	series      [][]float64
	extrapolate bool
}

func newAxis1D(tcs []region.Thermocouple, d *daq.Data, startRow, calNum int, coord func(region.Thermocouple) float64, extrapolate bool) (*axis1D, error) {
	if len(tcs) < 2 {
		return nil, fmt.Errorf("interp: 1-D method needs at least 2 thermocouples, got %d", len(tcs))
	}

	tcsCopy := append([]region.Thermocouple(nil), tcs...)
	series := make([][]float64, len(tcsCopy))
	for i, tc := range tcsCopy {
		series[i] = d.Column(tc.ColumnIndex, startRow, calNum)
	}
	sortByCoord(tcsCopy, series, coord)

	coords := make([]float64, len(tcsCopy))
	for i, tc := range tcsCopy {
		coords[i] = coord(tc)
	}
	return &axis1D{coords: coords, series: series, extrapolate: extrapolate}, nil
}

// at interpolates the temperature history at query point q.
//
// A query that lands exactly on a known coordinate returns that
// thermocouple's series unmodified, bit-for-bit (spec §8). Outside the
// known range, the axis either clamps to the nearest endpoint or
// extrapolates along the nearest pair's slope, depending on extrapolate.
func (a *axis1D) at(q float64, calNum int) []float64 {
	m := len(a.coords)

	// idx is the first position with coords[idx] >= q.
	idx := sort.SearchFloat64s(a.coords, q)
	if idx < m && a.coords[idx] == q {
		return append([]float64(nil), a.series[idx]...)
	}

	var lo, hi int
	switch {
	case idx == 0:
		if !a.extrapolate {
			return append([]float64(nil), a.series[0]...)
		}
		lo, hi = 0, 1
	case idx == m:
		if !a.extrapolate {
			return append([]float64(nil), a.series[m-1]...)
		}
		lo, hi = m-2, m-1
	default:
		lo, hi = idx-1, idx
	}

	x0, x1 := a.coords[lo], a.coords[hi]
	w := (q - x0) / (x1 - x0)
	out := make([]float64, calNum)
	for f := 0; f < calNum; f++ {
		out[f] = a.series[lo][f] + w*(a.series[hi][f]-a.series[lo][f])
	}
	return out
}
