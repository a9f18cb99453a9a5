package rng

import "testing"

func TestPointStaysInRectangle(t *testing.T) {
	r := New(-5, 10, 5, -10)
	for i := 0; i < 1000; i++ {
		p := r.Point()
		if p.X < -5 || p.X > 5 || p.Y < -10 || p.Y > 10 {
			t.Fatalf("point %v out of [-5,5]x[-10,10]", p)
		}
	}
}

func TestPointsReturnsRequestedCount(t *testing.T) {
	r := New(0, 1, 1, 0)
	pts := r.Points(37)
	if len(pts) != 37 {
		t.Fatalf("expected 37 points, got %d", len(pts))
	}
}

func TestNewPanicsOnDegenerateRectangle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for left > right")
		}
	}()
	New(5, 0, -5, 0)
}

func TestIntnRespectsBound(t *testing.T) {
	r := New(0, 1, 1, 0)
	for i := 0; i < 200; i++ {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) returned %d", v)
		}
	}
}
