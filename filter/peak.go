/*
NAME
  peak.go

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

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ausocean/tlc/progress"
	"github.com/ausocean/tlc/tlcerr"
	"github.com/ausocean/tlc/video"
)

// apply filters one pixel column according to method.
func apply(col []byte, method Method) []byte {
	switch method.Kind {
	case No:
		return col
	case Median:
		return medianFilter(col, method.WindowSize)
	case Wavelet:
		return waveletDenoise(col, method.ThresholdRatio)
	default:
		panic("filter: unknown method kind")
	}
}

// argmaxFirst returns the index of the first occurrence of the maximum
// value in xs (spec §4.5, §8: "ties: pick the first maximum").
func argmaxFirst(xs []byte) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}

// column copies pixel's byte column out of a Green2 matrix.
func column(g *video.Green2, pixel int) []byte {
	out := make([]byte, g.CalNum)
	for i := 0; i < g.CalNum; i++ {
		out[i] = g.At(i, pixel)
	}
	return out
}

// DetectPeak filters every pixel column of g with method and returns each
// pixel's index of maximum filtered green value (spec §4.5, §8).
func DetectPeak(ctx context.Context, bar *progress.Bar, g *video.Green2, method Method) ([]int, error) {
	npix := g.Area.Pixels()
	out := make([]int, npix)

	bar.Start(int64(npix))
	defer bar.Finish()

	eg, gctx := errgroup.WithContext(ctx)
	nWorkers := runtime.NumCPU()
	if nWorkers > npix {
		nWorkers = npix
	}
	if nWorkers < 1 {
		nWorkers = 1
	}
	chunk := (npix + nWorkers - 1) / nWorkers
	for w := 0; w < nWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > npix {
			hi = npix
		}
		if lo >= hi {
			continue
		}
		lo, hi := lo, hi
		eg.Go(func() error {
			for p := lo; p < hi; p++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				filtered := apply(column(g, p), method)
				out[p] = argmaxFirst(filtered)
				if _, err := bar.Add(1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Point returns the filtered temporal green signal at (y, x), area-relative
// coordinates, for visualization. It fails with BoundsViolation if (y, x)
// lies outside g.Area.
func Point(g *video.Green2, method Method, y, x int) ([]byte, error) {
	if !g.Area.Contains(y, x) {
		return nil, tlcerr.New(tlcerr.BoundsViolation, "filter: point (%d, %d) is outside area %+v", y, x, g.Area)
	}
	pixel := g.Area.Index(y, x)
	return apply(column(g, pixel), method), nil
}
