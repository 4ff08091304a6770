package render

import (
	"image/color"
	"testing"
)

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := WithAlpha(c, 1); got != c {
		t.Errorf("alpha 1 changed color: %v", got)
	}
	if got := WithAlpha(c, 0); got != (color.RGBA{}) {
		t.Errorf("alpha 0 = %v, want transparent", got)
	}
	if got := WithAlpha(c, 0.5); got.A != 127 || got.R != 100 {
		t.Errorf("alpha 0.5 = %v", got)
	}
}

func TestBananaOutlineClosedAndScaled(t *testing.T) {
	pts := BananaOutline(100, 50, 32)
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("outline not closed: %v vs %v", pts[0], pts[len(pts)-1])
	}
	if pts[0] != (Point{X: 100 - 32, Y: 50 + 14}) {
		t.Errorf("first point = %v", pts[0])
	}
}
