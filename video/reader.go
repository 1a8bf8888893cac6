/*
NAME
  reader.go

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
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"github.com/ausocean/tlc/tlcerr"
)

// jpegQuality is the quality used when re-compressing decoded frames into
// Packets; 100 keeps the round-trip effectively lossless at capture
// resolution.
const jpegQuality = 100

// OpenVideo opens the container at path, identifies its video stream via
// gocv's backend, and emits the complete ordered list of packets (spec
// §4.2). It returns an error of kind IoFailure if the file can't be opened,
// or InvariantViolation if the decoded packet count doesn't match the
// stream's reported frame count.
func OpenVideo(path string) (Meta, CodecParameters, []Packet, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return Meta{}, CodecParameters{}, nil, tlcerr.New(tlcerr.IoFailure, "video: open %q: %v", path, err)
	}
	defer vc.Close()

	meta := Meta{
		FrameRate: int(math.Round(vc.Get(gocv.VideoCaptureFPS))),
		NFrames:   int(vc.Get(gocv.VideoCaptureFrameCount)),
		Height:    int(vc.Get(gocv.VideoCaptureFrameHeight)),
		Width:     int(vc.Get(gocv.VideoCaptureFrameWidth)),
	}
	if err := meta.Validate(); err != nil {
		return Meta{}, CodecParameters{}, nil, tlcerr.New(tlcerr.InvariantViolation, "video: %v", err)
	}

	codec := CodecParameters{FourCC: fourCCString(int(vc.Get(gocv.VideoCaptureFOURCC)))}

	frame := gocv.NewMat()
	defer frame.Close()

	packets := make([]Packet, 0, meta.NFrames)
	for i := 0; vc.Read(&frame); i++ {
		if frame.Empty() {
			continue
		}
		buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, frame, []int{gocv.IMWriteJpegQuality, jpegQuality})
		if err != nil {
			return Meta{}, CodecParameters{}, nil, tlcerr.New(tlcerr.DecodeFailure, "video: encode frame %d: %v", i, err)
		}
		data := append([]byte(nil), buf.GetBytes()...)
		buf.Close()
		packets = append(packets, Packet{PTS: i, Data: data})
	}

	if len(packets) != meta.NFrames {
		return Meta{}, CodecParameters{}, nil, tlcerr.New(tlcerr.InvariantViolation,
			"video: packet count %d does not match reported nframes %d", len(packets), meta.NFrames)
	}

	return meta, codec, packets, nil
}

func fourCCString(v int) string {
	if v == 0 {
		return ""
	}
	b := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	return fmt.Sprintf("%s", b[:])
}
