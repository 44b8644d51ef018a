package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3})
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, raw.Shape(), "shape")
	if len(raw.Data()) != 6 {
		t.Errorf("data length = %d, want 6", len(raw.Data()))
	}
	for i, v := range raw.Data() {
		if v != 0 {
			t.Errorf("data[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{})
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if len(raw.Data()) != 1 {
		t.Errorf("scalar data length = %d, want 1", len(raw.Data()))
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}); err == nil {
		t.Error("zero dimension accepted")
	}
	if _, err := NewRaw(Shape{-3}); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestRawAt(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3})
	copy(raw.Data(), []float64{1, 2, 3, 4, 5, 6})

	if got := raw.At(0, 0); got != 1 {
		t.Errorf("At(0, 0) = %v, want 1", got)
	}
	if got := raw.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := raw.At(0, 2); got != 3 {
		t.Errorf("At(0, 2) = %v, want 3", got)
	}
}

func TestRawAtPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3})

	assertPanics(t, "wrong arity", func() { raw.At(1) })
	assertPanics(t, "out of bounds", func() { raw.At(2, 0) })
	assertPanics(t, "negative index", func() { raw.At(0, -1) })
}

func TestRawClone(t *testing.T) {
	raw, _ := NewRaw(Shape{3})
	copy(raw.Data(), []float64{1, 2, 3})

	clone := raw.Clone()
	clone.Data()[0] = 99

	if raw.Data()[0] != 1 {
		t.Error("clone shares memory with original")
	}
	assertEqualShape(t, raw.Shape(), clone.Shape(), "clone shape")
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}
