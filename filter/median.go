/*
NAME
  median.go

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

import "sort"

// medianFilter applies a sliding-median filter of the given window size to
// signal, clipping the window at the boundaries rather than padding (spec
// §4.5).
func medianFilter(signal []byte, windowSize int) []byte {
	if windowSize <= 1 {
		return append([]byte(nil), signal...)
	}
	n := len(signal)
	radius := windowSize / 2
	out := make([]byte, n)
	window := make([]byte, 0, windowSize)

	for i := 0; i < n; i++ {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i - radius + windowSize
		if hi > n {
			hi = n
		}
		window = append(window[:0], signal[lo:hi]...)
		sort.Slice(window, func(a, b int) bool { return window[a] < window[b] })
		out[i] = window[len(window)/2]
	}
	return out
}
