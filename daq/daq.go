/*
NAME
  daq.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package daq reads a data-acquisition thermocouple time series from either
// a tab-delimited LabVIEW measurement file (.lvm) or a spreadsheet (.xlsx)
// into a dense matrix of 64-bit floats (spec §4.4).
package daq

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/tlc/tlcerr"
)

// Data is the parsed DAQ table: nrows x ncols of float64, rows are time,
// columns are thermocouple channels.
type Data struct {
	mat *mat.Dense
}

// NewData wraps a row-major slice of nrows*ncols float64 values.
func NewData(nrows, ncols int, values []float64) *Data {
	return &Data{mat: mat.NewDense(nrows, ncols, values)}
}

// Dims returns (nrows, ncols).
func (d *Data) Dims() (int, int) { return d.mat.Dims() }

// At returns the value at (row, col).
func (d *Data) At(row, col int) float64 { return d.mat.At(row, col) }

// Column returns a copy of column col, restricted to rows [startRow,
// startRow+n).
func (d *Data) Column(col, startRow, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = d.mat.At(startRow+i, col)
	}
	return out
}

// Read parses path, dispatching on its extension, into a Data matrix (spec
// §4.4 and §6).
func Read(path string) (*Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".lvm":
		rows, err := readLVM(path)
		if err != nil {
			return nil, errors.Wrap(err, "daq: read lvm")
		}
		return rowsToData(rows)
	case ".xlsx":
		rows, err := readXLSX(path)
		if err != nil {
			return nil, errors.Wrap(err, "daq: read xlsx")
		}
		return rowsToData(rows)
	default:
		return nil, tlcerr.New(tlcerr.IoFailure, "daq: unsupported extension %q", ext)
	}
}

func rowsToData(rows [][]float64) (*Data, error) {
	if len(rows) == 0 {
		return nil, tlcerr.New(tlcerr.InvariantViolation, "daq: empty sheet")
	}
	ncols := len(rows[0])
	if ncols == 0 {
		return nil, tlcerr.New(tlcerr.InvariantViolation, "daq: empty sheet")
	}
	flat := make([]float64, 0, len(rows)*ncols)
	for i, row := range rows {
		if len(row) != ncols {
			return nil, tlcerr.New(tlcerr.InvariantViolation, "daq: row %d has %d columns, want %d", i, len(row), ncols)
		}
		flat = append(flat, row...)
	}
	return NewData(len(rows), ncols, flat), nil
}
