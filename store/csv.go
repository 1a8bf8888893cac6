/*
NAME
  csv.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package store writes a solved run's outputs at rest: the Nu matrix as
// CSV, a Jet-colormap PNG of the same field, and a TOML snapshot of every
// input that produced it (spec §6).
//
// encoding/csv is used here rather than a third-party library: nothing in
// the example pack carries a CSV dependency, and the format itself (one
// comma-separated row per pixel row, "NaN" literal for missing data) is
// simple enough that the standard library's writer needs no augmentation.
package store

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteNuCSV writes nu, row per pixel row, to w (spec §6 "one row per pixel
// row, comma-separated f64, NaN literal for missing").
func WriteNuCSV(w io.Writer, nu *mat.Dense) error {
	cw := csv.NewWriter(w)
	rows, cols := nu.Dims()
	record := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := nu.At(r, c)
			if math.IsNaN(v) {
				record[c] = "NaN"
			} else {
				record[c] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadNuCSV parses a CSV written by WriteNuCSV back into a dense matrix
// (spec §8 "round trip of save/load").
func ReadNuCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return mat.NewDense(0, 0, nil), nil
	}
	rows, cols := len(records), len(records[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range records {
		for _, field := range row {
			if field == "NaN" {
				flat = append(flat, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			flat = append(flat, v)
		}
	}
	return mat.NewDense(rows, cols, flat), nil
}
