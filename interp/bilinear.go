/*
NAME
  bilinear.go

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

// grid interpolates over a (ny, nx) rectangular thermocouple grid by first
// resolving each row along x, then resolving the resulting column along y
// (spec §4.6 Bilinear/BilinearExtra).
type grid struct {
	rows []axis1D // one per grid row, sorted by y; each interpolates along x
	yRow []float64
	extY bool
}

func newGrid(tcs []region.Thermocouple, d *daq.Data, startRow, calNum int, shape [2]int, extrapolate bool) (*grid, error) {
	ny, nx := shape[0], shape[1]
	if ny < 1 || nx < 1 {
		return nil, fmt.Errorf("interp: bilinear shape (%d, %d) is invalid", ny, nx)
	}
	if len(tcs) != ny*nx {
		return nil, fmt.Errorf("interp: bilinear shape (%d, %d) needs %d thermocouples, got %d", ny, nx, ny*nx, len(tcs))
	}

	tcsCopy := append([]region.Thermocouple(nil), tcs...)
	sort.Slice(tcsCopy, func(i, j int) bool {
		if tcsCopy[i].Y != tcsCopy[j].Y {
			return tcsCopy[i].Y < tcsCopy[j].Y
		}
		return tcsCopy[i].X < tcsCopy[j].X
	})

	// Group into ny rows of nx thermocouples, one row per distinct y band in
	// ascending order, as laid out by the sort above.
	rows := make([]axis1D, ny)
	yRow := make([]float64, ny)
	for r := 0; r < ny; r++ {
		rowTCs := tcsCopy[r*nx : (r+1)*nx]
		series := make([][]float64, nx)
		for i, tc := range rowTCs {
			series[i] = d.Column(tc.ColumnIndex, startRow, calNum)
		}
		rowCopy := append([]region.Thermocouple(nil), rowTCs...)
		sortByCoord(rowCopy, series, func(tc region.Thermocouple) float64 { return float64(tc.X) })

		coords := make([]float64, nx)
		for i, tc := range rowCopy {
			coords[i] = float64(tc.X)
		}
		rows[r] = axis1D{coords: coords, series: series, extrapolate: extrapolate}
		yRow[r] = float64(rowCopy[0].Y)
	}

	return &grid{rows: rows, yRow: yRow, extY: extrapolate}, nil
}

// at bilinearly interpolates the temperature history at (y, x).
func (g *grid) at(y, x float64, calNum int) []float64 {
	ny := len(g.rows)
	if ny == 1 {
		return g.rows[0].at(x, calNum)
	}

	rowResult := make([][]float64, ny)
	for r := range g.rows {
		rowResult[r] = g.rows[r].at(x, calNum)
	}

	yAxis := axis1D{coords: g.yRow, series: rowResult, extrapolate: g.extY}
	return yAxis.at(y, calNum)
}
