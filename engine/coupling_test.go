package engine

import "testing"

// TestCouplingScenario reproduces spec §8 scenario 3.
func TestCouplingScenario(t *testing.T) {
	const nframes, nrows = 100, 100

	newSR, err := coupleStartFrame(10, 20, 15, nframes, nrows)
	if err != nil {
		t.Fatalf("set_start_frame(15): %v", err)
	}
	if newSR != 25 {
		t.Errorf("set_start_frame(15) -> start_row = %d, want 25", newSR)
	}

	newSR, err = coupleStartFrame(10, 20, 5, nframes, nrows)
	if err != nil {
		t.Fatalf("set_start_frame(5): %v", err)
	}
	if newSR != 15 {
		t.Errorf("set_start_frame(5) -> start_row = %d, want 15", newSR)
	}
}

// TestCouplingDocumentedFailure reproduces the §8 scenario 3 failing case.
func TestCouplingDocumentedFailure(t *testing.T) {
	_, err := coupleStartFrame(10, 25, 20, 100, 30)
	if err == nil {
		t.Fatal("expected set_start_frame(20) to fail when new_row would reach 35 >= nrows 30")
	}
}

func TestCoupleStartRowSymmetric(t *testing.T) {
	newSF, err := coupleStartRow(10, 20, 25, 100, 100)
	if err != nil {
		t.Fatalf("set_start_row(25): %v", err)
	}
	if newSF != 15 {
		t.Errorf("set_start_row(25) -> start_frame = %d, want 15", newSF)
	}
}
