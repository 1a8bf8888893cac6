/*
NAME
  progress.go

AUTHORS
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package progress implements the shared progress/cancellation primitive
// described in spec §4.9: a single 64-bit atomic packs a stage's total in
// the upper 32 bits and its completed count in the lower 32 bits. Workers
// call Add as they finish units of work; a negative packed value means the
// stage has been cancelled, and Add reports this as an error so workers can
// stop cooperatively at their next checkpoint.
package progress

import (
	"runtime"
	"sync/atomic"

	"github.com/ausocean/tlc/tlcerr"
)

// Bar is a progress/cancellation cell for one long-running stage. The zero
// value is an idle bar (no stage in progress).
type Bar struct {
	v atomic.Int64
}

func pack(total, count int64) int64 { return total<<32 | (count & 0xffffffff) }

func unpackTotal(v int64) int64 { return v >> 32 }
func unpackCount(v int64) int64 { return int64(int32(v)) }

// Start installs total as the new stage size. If a previous stage is still
// in progress, Start first cancels it (flips its packed value negative) and
// spins until the previous stage's owner calls Finish, bringing the cell
// back to zero, before installing the new total.
func (b *Bar) Start(total int64) {
	for {
		old := b.v.Load()
		if old == 0 {
			break
		}
		if old > 0 {
			b.v.CompareAndSwap(old, -old)
		}
		runtime.Gosched()
	}
	b.v.Store(pack(total, 0))
}

// Add records n completed units of work and returns the new count. If the
// stage has been cancelled (packed value negative), Add returns a Cancelled
// error and the caller should stop at its next checkpoint without caching
// its partial result.
func (b *Bar) Add(n int64) (int64, error) {
	nv := b.v.Add(n)
	if nv < 0 {
		return unpackCount(nv), tlcerr.New(tlcerr.Cancelled, "stage cancelled")
	}
	return unpackCount(nv), nil
}

// Cancelled reports whether the stage has been cancelled without mutating
// the cell; useful as a cheap checkpoint inside tight loops.
func (b *Bar) Cancelled() bool { return b.v.Load() < 0 }

// Total returns the stage's total, or 0 if no stage is installed.
func (b *Bar) Total() int64 {
	v := b.v.Load()
	if v < 0 {
		v = -v
	}
	return unpackTotal(v)
}

// Finish releases the cell back to idle (0), allowing a subsequent Start to
// proceed without spinning. Every stage must call Finish exactly once when
// it returns, whether it completed, failed, or was cancelled.
func (b *Bar) Finish() { b.v.Store(0) }
