/*
NAME
  coupling.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package engine

import "github.com/ausocean/tlc/tlcerr"

// coupleStartFrame implements §4.8's single-ended start_frame update: the
// gap between start_frame and start_row is preserved. It is pure so the
// coupling scenarios of §8 can be tested without a real video or DAQ file.
func coupleStartFrame(oldSF, oldSR, newSF, nframes, nrows int) (newSR int, err error) {
	if oldSR+newSF < oldSF {
		return 0, tlcerr.New(tlcerr.BoundsViolation, "engine: set_start_frame(%d) would desynchronize start_row below 0", newSF)
	}
	newSR = oldSR + newSF - oldSF
	if newSF < 0 || newSF >= nframes || newSR < 0 || newSR >= nrows {
		return 0, tlcerr.New(tlcerr.BoundsViolation, "engine: set_start_frame(%d) yields out-of-range start_row %d", newSF, newSR)
	}
	return newSR, nil
}

// coupleStartRow is the symmetric counterpart of coupleStartFrame.
func coupleStartRow(oldSF, oldSR, newSR, nframes, nrows int) (newSF int, err error) {
	if oldSF+newSR < oldSR {
		return 0, tlcerr.New(tlcerr.BoundsViolation, "engine: set_start_row(%d) would desynchronize start_frame below 0", newSR)
	}
	newSF = oldSF + newSR - oldSR
	if newSR < 0 || newSR >= nrows || newSF < 0 || newSF >= nframes {
		return 0, tlcerr.New(tlcerr.BoundsViolation, "engine: set_start_row(%d) yields out-of-range start_frame %d", newSR, newSF)
	}
	return newSF, nil
}
