/*
NAME
  meta.go

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package video opens a TLC capture's video container, extracts its stream
// metadata, and decodes frames into the RGB24 byte planes the rest of the
// pipeline operates on (spec §4.2-§4.3). Decoding goes through gocv's
// OpenCV bindings; a "packet" here is a JPEG-compressed frame (quality 100,
// lossless for our purposes at capture resolution) rather than a raw
// demuxed bitstream unit, since gocv's VideoCapture already performs the
// demux+decode step as one operation. This preserves the spec's "one packet
// = one frame" invariant and lets DecoderPool still parallelize decoding
// across a packet range, the same shape the original design relies on.
package video

import "fmt"

// Meta is the video's immutable, once-derived metadata.
type Meta struct {
	FrameRate int // frames per second, rounded to the nearest integer
	NFrames   int
	Height    int
	Width     int
}

// Validate checks Meta's invariants (spec §3).
func (m Meta) Validate() error {
	if m.FrameRate < 1 || m.NFrames < 1 || m.Height < 1 || m.Width < 1 {
		return fmt.Errorf("video: meta has a non-positive field: %+v", m)
	}
	return nil
}

// CodecParameters carries the information needed to construct a DecoderPool
// bound to this video: nothing more than the FourCC in our gocv-backed
// implementation, since gocv.VideoCapture hides the rest of the codec
// context from callers.
type CodecParameters struct {
	FourCC string
}

// Packet is one compressed frame: a presentation index and its JPEG-encoded
// bytes.
type Packet struct {
	PTS  int
	Data []byte
}
