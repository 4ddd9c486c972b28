package utils

import "testing"

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 20: "XX", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		if got := ToRoman(in); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestClampAndDistance(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-1, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("clamp mismatch")
	}
	if Distance(0, 0, 3, 4) != 5 {
		t.Fatalf("distance mismatch")
	}
}

func TestPRNGSeeded(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatalf("same seed must give same sequence")
		}
	}
}

func TestPRNGReseedRepeatsSequence(t *testing.T) {
	s := NewPRNGService(7)
	first := []int{s.Intn(1000), s.Intn(1000), s.Intn(1000)}
	s.Reseed()
	for i, want := range first {
		if got := s.Intn(1000); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Fatalf("zero seed must be replaced")
	}
}
