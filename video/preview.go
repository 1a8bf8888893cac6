/*
NAME
  preview.go

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
	"encoding/base64"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ausocean/tlc/tlcerr"
)

// previewQuality is the JPEG quality used for the UI preview path; it need
// not match jpegQuality used for packet storage.
const previewQuality = 90

// request is an in-flight preview ask; reply delivers exactly one result.
type request struct {
	frameIndex int
	reply      chan previewResult
}

type previewResult struct {
	data string
	err  error
}

// Previewer serves DecodeFrameBase64 requests with a bounded, single-slot,
// newest-wins backlog: if a new request arrives while one is pending, the
// older request is dropped and its caller receives ErrSuperseded. This
// matches spec §4.3's "bounded pending backlog with newest-wins semantics"
// for the interactive preview path, keeping the UI responsive under a flood
// of scrub events without growing an unbounded queue.
type Previewer struct {
	pool    *DecoderPool
	packets []Packet
	meta    Meta

	mu      sync.Mutex
	pending *request
}

// NewPreviewer returns a Previewer bound to pool, packets, and meta.
func NewPreviewer(pool *DecoderPool, packets []Packet, meta Meta) *Previewer {
	return &Previewer{pool: pool, packets: packets, meta: meta}
}

// ErrSuperseded is returned to a caller of DecodeFrameBase64 whose request
// was displaced by a newer one before it could be served.
var ErrSuperseded = tlcerr.New(tlcerr.Cancelled, "preview request superseded by a newer one")

// DecodeFrameBase64 decodes packets[frameIndex], JPEG-encodes the result,
// and returns it as a base64 string (spec §4.3). If another request
// supersedes this one before a worker picks it up, DecodeFrameBase64 returns
// ErrSuperseded rather than blocking indefinitely.
func (p *Previewer) DecodeFrameBase64(ctx context.Context, frameIndex int) (string, error) {
	if frameIndex < 0 || frameIndex >= len(p.packets) {
		return "", tlcerr.New(tlcerr.BoundsViolation, "video: frame_index %d exceeds nframes %d", frameIndex, len(p.packets))
	}

	req := &request{frameIndex: frameIndex, reply: make(chan previewResult, 1)}

	p.mu.Lock()
	old := p.pending
	p.pending = req
	p.mu.Unlock()
	if old != nil {
		old.reply <- previewResult{err: ErrSuperseded}
	}

	go p.serve(req)

	select {
	case res := <-req.reply:
		return res.data, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *Previewer) serve(req *request) {
	p.mu.Lock()
	if p.pending != req {
		// Already superseded before a worker even started; the superseding
		// request already delivered ErrSuperseded above.
		p.mu.Unlock()
		return
	}
	p.pending = nil
	p.mu.Unlock()

	rgb := make([]byte, p.meta.Height*p.meta.Width*3)
	if err := p.pool.Decode(p.packets[req.frameIndex], p.meta.Height, p.meta.Width, rgb); err != nil {
		req.reply <- previewResult{err: err}
		return
	}

	mat, err := gocv.NewMatFromBytes(p.meta.Height, p.meta.Width, gocv.MatTypeCV8UC3, rgb)
	if err != nil {
		req.reply <- previewResult{err: tlcerr.New(tlcerr.DecodeFailure, "video: build preview mat: %v", err)}
		return
	}
	defer mat.Close()

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, previewQuality})
	if err != nil {
		req.reply <- previewResult{err: tlcerr.New(tlcerr.DecodeFailure, "video: encode preview: %v", err)}
		return
	}
	defer buf.Close()

	req.reply <- previewResult{data: base64.StdEncoding.EncodeToString(buf.GetBytes())}
}
