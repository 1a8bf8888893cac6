/*
NAME
  decoder.go

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
	"sync"

	"gocv.io/x/gocv"

	"github.com/ausocean/tlc/tlcerr"
)

// DecoderPool is a thread-local decoder cache bound to one video's codec
// parameters (spec §4.3). Each goroutine that calls Decode gets its own pair
// of scratch Mats -- one for the JPEG decode destination, one for the
// BGR->RGB conversion destination -- so concurrent decodes never alias
// OpenCV-owned memory.
type DecoderPool struct {
	codec CodecParameters
	pool  sync.Pool

	mu      sync.Mutex
	created []*scratch
}

type scratch struct {
	decoded   gocv.Mat
	converted gocv.Mat
}

// NewDecoderPool returns a pool bound to codec. codec is currently
// unused beyond being carried for parity with the spec's "keyed on codec
// parameters" contract; gocv.IMDecode doesn't need it; a future codec
// backend that exposes raw bitstreams would use it to build a real decoder
// context per thread.
func NewDecoderPool(codec CodecParameters) *DecoderPool {
	p := &DecoderPool{codec: codec}
	p.pool.New = func() interface{} {
		s := &scratch{decoded: gocv.NewMat(), converted: gocv.NewMat()}
		p.mu.Lock()
		p.created = append(p.created, s)
		p.mu.Unlock()
		return s
	}
	return p
}

// Decode decodes packet into dst, an RGB24 buffer of length h*w*3. dst must
// already be sized correctly by the caller.
func (p *DecoderPool) Decode(packet Packet, h, w int, dst []byte) error {
	s := p.pool.Get().(*scratch)
	defer p.pool.Put(s)

	if err := gocv.IMDecodeIntoMat(packet.Data, gocv.IMReadColor, &s.decoded); err != nil {
		return tlcerr.New(tlcerr.DecodeFailure, "video: decode packet %d: %v", packet.PTS, err)
	}
	if s.decoded.Empty() {
		return tlcerr.New(tlcerr.DecodeFailure, "video: decode packet %d produced an empty frame", packet.PTS)
	}
	if s.decoded.Rows() != h || s.decoded.Cols() != w {
		return tlcerr.New(tlcerr.InvariantViolation,
			"video: decoded frame %dx%d does not match video geometry %dx%d", s.decoded.Rows(), s.decoded.Cols(), h, w)
	}

	gocv.CvtColor(s.decoded, &s.converted, gocv.ColorBGRToRGB)

	buf, err := s.converted.DataPtrUint8()
	if err != nil {
		return tlcerr.New(tlcerr.DecodeFailure, "video: read decoded bytes for packet %d: %v", packet.PTS, err)
	}
	if len(buf) != len(dst) {
		return tlcerr.New(tlcerr.InvariantViolation, "video: decoded byte length %d does not match expected %d", len(buf), len(dst))
	}
	copy(dst, buf)
	return nil
}

// Close releases every scratch Mat this pool has created. It is safe to
// call once a pool is no longer in use by any goroutine.
func (p *DecoderPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.created {
		s.decoded.Close()
		s.converted.Close()
	}
	p.created = nil
}
