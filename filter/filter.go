/*
NAME
  filter.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package filter conditions the per-pixel temporal green-channel signal
// extracted from a TLC video (see video.Green2) and locates each pixel's
// peak-green frame. Three methods are supported: None, a sliding-median
// filter, and a wavelet soft-threshold denoiser.
package filter

import "fmt"

// Kind distinguishes the filtering strategy applied to each pixel column.
type Kind int

const (
	No Kind = iota
	Median
	Wavelet
)

// Method is a filter method and its parameters. Exactly one of WindowSize
// (Median) or ThresholdRatio (Wavelet) is meaningful, selected by Kind.
type Method struct {
	Kind Kind

	// WindowSize is the sliding-median window; valid for Kind == Median, must
	// be >= 1.
	WindowSize int

	// ThresholdRatio scales the per-level max wavelet coefficient used for
	// soft thresholding; valid for Kind == Wavelet, must be in (0, 1].
	ThresholdRatio float64
}

// NewNo returns the identity filter method.
func NewNo() Method { return Method{Kind: No} }

// NewMedian returns a sliding-median filter method of the given window size.
func NewMedian(windowSize int) (Method, error) {
	if windowSize < 1 {
		return Method{}, fmt.Errorf("filter: median window size must be >= 1, got %d", windowSize)
	}
	return Method{Kind: Median, WindowSize: windowSize}, nil
}

// NewWavelet returns a wavelet soft-threshold filter method.
func NewWavelet(thresholdRatio float64) (Method, error) {
	if thresholdRatio <= 0 || thresholdRatio > 1 {
		return Method{}, fmt.Errorf("filter: wavelet threshold ratio must be in (0, 1], got %g", thresholdRatio)
	}
	return Method{Kind: Wavelet, ThresholdRatio: thresholdRatio}, nil
}

func (m Method) String() string {
	switch m.Kind {
	case No:
		return "No"
	case Median:
		return fmt.Sprintf("Median{window=%d}", m.WindowSize)
	case Wavelet:
		return fmt.Sprintf("Wavelet{ratio=%g}", m.ThresholdRatio)
	default:
		return "unknown"
	}
}
