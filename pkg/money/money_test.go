package money

import "testing"

func TestLineTotalAvoidsFloatDrift(t *testing.T) {
	// 0.1*3 in raw float64 is 0.30000000000000004.
	if got := LineTotal(0.1, 3); got != 0.30 {
		t.Fatalf("expected 0.30 but got %v", got)
	}
	if got := LineTotal(1.90, 3); got != 5.70 {
		t.Fatalf("expected 5.70 but got %v", got)
	}
}

func TestSumRoundsOnce(t *testing.T) {
	if got := Sum([]float64{5.00, 5.70}); got != 10.70 {
		t.Fatalf("expected 10.70 but got %v", got)
	}
	if got := Sum(nil); got != 0 {
		t.Fatalf("expected 0 for empty sum but got %v", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(30.00, 2); got != 15.00 {
		t.Fatalf("expected 15.00 but got %v", got)
	}
	if got := Average(10.00, 3); got != 3.33 {
		t.Fatalf("expected 3.33 but got %v", got)
	}
	if got := Average(10.00, 0); got != 0 {
		t.Fatalf("expected 0 for zero count but got %v", got)
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	if got := Round2(2.345); got != 2.35 {
		t.Fatalf("expected 2.35 but got %v", got)
	}
	if got := Round2(-2.345); got != -2.35 {
		t.Fatalf("expected -2.35 but got %v", got)
	}
}
