/*
NAME
  xlsx.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package daq

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

// readXLSX reads the first worksheet of an Excel workbook; every cell must
// parse as a float64, and shape comes from the sheet's own bookkeeping
// (MaxRow/MaxCol), the tealeg/xlsx analogue of calamine's get_size().
func readXLSX(path string) ([][]float64, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("xlsx: workbook has no worksheets")
	}
	sheet := wb.Sheets[0]

	rows := make([][]float64, 0, sheet.MaxRow)
	for r := 0; r < sheet.MaxRow; r++ {
		row := make([]float64, sheet.MaxCol)
		for c := 0; c < sheet.MaxCol; c++ {
			cell := sheet.Cell(r, c)
			v, err := cell.Float()
			if err != nil {
				return nil, fmt.Errorf("xlsx: cell (%d, %d) is not numeric: %w", r, c, err)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
