package utils

import "testing"

func TestPRNGIsSeeded(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	speeds := []float64{2, 3}
	for i := 0; i < 50; i++ {
		x, y := a.Pick(speeds), b.Pick(speeds)
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x != 2 && x != 3 {
			t.Fatalf("draw %d = %v, not in set", i, x)
		}
	}
	if got := a.Pick(nil); got != 0 {
		t.Errorf("Pick(nil) = %v, want 0", got)
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d", a.Seed())
	}
}

func TestMath(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
}
