package geom

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(200, 0, 10, 200)
	want := Rect{Top: 200, Left: 0, Bottom: 400, Right: 10}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
	if r.Width() != 10 {
		t.Errorf("expected width 10, got %f", r.Width())
	}
	if r.Height() != 200 {
		t.Errorf("expected height 200, got %f", r.Height())
	}
}

func TestIntersects_NoOverlapHorizontalGap(t *testing.T) {
	ball := Rect{Top: 295, Left: 500, Bottom: 305, Right: 510}
	paddle := Rect{Top: 200, Left: 0, Bottom: 400, Right: 10}

	if f, ok := Intersects(ball, paddle); ok {
		t.Errorf("expected no intersection, got fraction %f", f)
	}
}

func TestIntersects_NoOverlapVerticalGap(t *testing.T) {
	ball := Rect{Top: 100, Left: 5, Bottom: 110, Right: 15}
	paddle := Rect{Top: 200, Left: 0, Bottom: 400, Right: 10}

	if _, ok := Intersects(ball, paddle); ok {
		t.Error("expected no intersection above the paddle")
	}
}

func TestIntersects_Fraction(t *testing.T) {
	paddle := Rect{Top: 200, Left: 0, Bottom: 400, Right: 10}

	tests := []struct {
		name string
		top  float64
		want float64
	}{
		{"top edge", 190, 0.0},
		{"quarter", 240, 0.25},
		{"center", 290, 0.5},
		{"bottom edge", 390, 1.0},
		{"hanging below", 395, 1.025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewRect(tt.top, 5, 10, 10)
			f, ok := Intersects(ball, paddle)
			if !ok {
				t.Fatalf("expected intersection for top=%f", tt.top)
			}
			if math.Abs(f-tt.want) > 1e-9 {
				t.Errorf("expected fraction %f, got %f", tt.want, f)
			}
		})
	}
}

func TestIntersects_RightEdgeInside(t *testing.T) {
	ai := Rect{Top: 200, Left: 990, Bottom: 400, Right: 1000}
	ball := NewRect(300, 985, 10, 10)

	if _, ok := Intersects(ball, ai); !ok {
		t.Error("expected ball whose right edge enters the paddle to intersect")
	}
}

func TestIntersects_TouchingEdgesCount(t *testing.T) {
	paddle := Rect{Top: 200, Left: 0, Bottom: 400, Right: 10}
	ball := NewRect(300, 10, 10, 10)

	if _, ok := Intersects(ball, paddle); !ok {
		t.Error("expected touching edges to count as overlap")
	}
}
