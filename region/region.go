/*
NAME
  region.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package region holds the small, dependency-free geometric types shared by
// the video, interpolation, config, engine and store packages: the
// rectangular area of interest and thermocouple placement.
package region

import "fmt"

// Area is a rectangle in video pixel coordinates.
type Area struct {
	TopY, TopX int
	H, W       int
}

// Validate checks that Area fits within a frame of the given dimensions.
func (a Area) Validate(videoH, videoW int) error {
	if a.H <= 0 || a.W <= 0 {
		return fmt.Errorf("region: area has non-positive dimensions (%d, %d)", a.H, a.W)
	}
	if a.TopY < 0 || a.TopX < 0 || a.TopY+a.H > videoH || a.TopX+a.W > videoW {
		return fmt.Errorf("region: area (top=%d,%d size=%d,%d) exceeds frame (%d, %d)",
			a.TopY, a.TopX, a.H, a.W, videoH, videoW)
	}
	return nil
}

// Pixels returns the number of pixels covered by the area.
func (a Area) Pixels() int { return a.H * a.W }

// Index returns the column index into a Green2 row for the pixel at (y, x)
// measured relative to the area's top-left corner.
func (a Area) Index(y, x int) int { return y*a.W + x }

// Contains reports whether (y, x), in area-relative coordinates, lies within
// the area's bounds.
func (a Area) Contains(y, x int) bool {
	return y >= 0 && y < a.H && x >= 0 && x < a.W
}

// Thermocouple associates a DAQ column with a position in the video's
// coordinate frame. The position may be negative or lie outside the area
// covered by Area; physical sensors often sit just off-frame.
type Thermocouple struct {
	ColumnIndex int
	Y, X        int
}

// DefaultArea centers a region covering half the frame's height and width,
// as the engine does whenever a new video is set (spec §4.8).
func DefaultArea(videoH, videoW int) Area {
	return Area{TopY: videoH / 4, TopX: videoW / 4, H: videoH / 2, W: videoW / 2}
}
