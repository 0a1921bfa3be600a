package testutil

import "testing"

func TestUniformIndices(t *testing.T) {
	idx := UniformIndices(42, 1000, 16)
	if len(idx) != 1000 {
		t.Fatalf("len = %d, want 1000", len(idx))
	}
	for i, k := range idx {
		if k < 0 || k >= 16 {
			t.Fatalf("index %d: value %d outside [0, 16)", i, k)
		}
	}

	again := UniformIndices(42, 1000, 16)
	for i := range idx {
		if idx[i] != again[i] {
			t.Fatalf("same seed produced different sequences at %d", i)
		}
	}
}

func TestNormalValues(t *testing.T) {
	v := NormalValues(7, 1000)
	if len(v) != 1000 {
		t.Fatalf("len = %d, want 1000", len(v))
	}
	RequireFinite(t, v)

	again := NormalValues(7, 1000)
	RequireSliceExactEqual(t, v, again)
}

func TestOnes(t *testing.T) {
	o := Ones(5)
	for i, v := range o {
		if v != 1.0 {
			t.Fatalf("index %d: got %v, want 1.0", i, v)
		}
	}
}
