/*
NAME
  green2.go

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ausocean/tlc/progress"
	"github.com/ausocean/tlc/region"
)

// Green2 is the (calNum, area.Pixels()) byte matrix of green-channel
// samples over time (spec §3 "Green2"). Row i is the frame at
// packets[start+i]; column region.Area.Index(y, x) is the pixel at
// (top_y+y, top_x+x) in that frame.
type Green2 struct {
	CalNum int
	Area   region.Area
	data   []byte // row-major, CalNum x Area.Pixels()
}

// NewGreen2 wraps a pre-built row-major byte slice as a Green2 matrix. It is
// mainly useful for tests and for callers that already have green-channel
// data from a source other than BuildGreen2.
func NewGreen2(calNum int, area region.Area, data []byte) *Green2 {
	return &Green2{CalNum: calNum, Area: area, data: data}
}

// Row returns a slice view of row i without copying.
func (g *Green2) Row(i int) []byte {
	n := g.Area.Pixels()
	return g.data[i*n : (i+1)*n]
}

// At returns the green sample at (frame, pixel).
func (g *Green2) At(frame, pixel int) byte { return g.data[frame*g.Area.Pixels()+pixel] }

// BuildGreen2 decodes packets[start:start+calNum] in parallel using pool and
// extracts the green channel of area from each decoded frame (spec §4.3).
func BuildGreen2(ctx context.Context, pool *DecoderPool, bar *progress.Bar, packets []Packet, start, calNum int, meta Meta, area region.Area) (*Green2, error) {
	if start < 0 || start+calNum > len(packets) {
		return nil, fmt.Errorf("video: range [%d, %d) exceeds %d packets", start, start+calNum, len(packets))
	}
	if err := area.Validate(meta.Height, meta.Width); err != nil {
		return nil, err
	}

	g := &Green2{CalNum: calNum, Area: area, data: make([]byte, calNum*area.Pixels())}

	bar.Start(int64(calNum))
	defer bar.Finish()

	g_, gctx := errgroup.WithContext(ctx)
	nWorkers := runtime.NumCPU()
	if nWorkers > calNum {
		nWorkers = calNum
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	rgbLen := meta.Height * meta.Width * 3
	chunk := (calNum + nWorkers - 1) / nWorkers
	for w := 0; w < nWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > calNum {
			hi = calNum
		}
		if lo >= hi {
			continue
		}
		lo, hi := lo, hi
		g_.Go(func() error {
			rgb := make([]byte, rgbLen)
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := pool.Decode(packets[start+i], meta.Height, meta.Width, rgb); err != nil {
					return err
				}
				extractGreen(rgb, meta.Width, area, g.Row(i))
				if _, err := bar.Add(1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g_.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// extractGreen copies the green byte of every pixel in area from an RGB24
// frame of the given stride (in pixels) into dst, row-major over the area.
func extractGreen(rgb []byte, stride int, area region.Area, dst []byte) {
	k := 0
	for y := area.TopY; y < area.TopY+area.H; y++ {
		rowOff := y * stride * 3
		for x := area.TopX; x < area.TopX+area.W; x++ {
			dst[k] = rgb[rowOff+x*3+1]
			k++
		}
	}
}
