package video

import (
	"context"
	"testing"
	"time"

	"github.com/ausocean/tlc/tlcerr"
)

func TestDrainPacketsCompletes(t *testing.T) {
	ch := make(chan chanItem, 3)
	ch <- chanItem{pkt: Packet{PTS: 0, Data: []byte{1}}}
	ch <- chanItem{pkt: Packet{PTS: 1, Data: []byte{2}}}
	ch <- chanItem{eof: true}

	got, err := drainPackets(context.Background(), ch)
	if err != nil {
		t.Fatalf("drainPackets: %v", err)
	}
	if len(got) != 2 || got[0].PTS != 0 || got[1].PTS != 1 {
		t.Errorf("got %+v, want two packets with PTS 0, 1", got)
	}
}

func TestDrainPacketsPropagatesItemError(t *testing.T) {
	wantErr := tlcerr.New(tlcerr.DecodeFailure, "boom")
	ch := make(chan chanItem, 1)
	ch <- chanItem{err: wantErr}

	_, err := drainPackets(context.Background(), ch)
	if err != wantErr {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

// TestDrainPacketsStuckReader reproduces spec §5's timeout contract: a
// channel that never delivers a next packet (nor closes) within
// packetReadTimeout of the previous receive causes drainPackets to fail
// with ErrReaderStuck rather than block forever.
func TestDrainPacketsStuckReader(t *testing.T) {
	ch := make(chan chanItem) // never written to: simulates a stalled source.

	start := time.Now()
	_, err := drainPackets(context.Background(), ch)
	elapsed := time.Since(start)

	if err != ErrReaderStuck {
		t.Fatalf("got %v, want ErrReaderStuck", err)
	}
	if elapsed < packetReadTimeout {
		t.Errorf("returned after %s, want at least %s", elapsed, packetReadTimeout)
	}
}

func TestDrainPacketsContextCancelled(t *testing.T) {
	ch := make(chan chanItem)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := drainPackets(ctx, ch)
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
