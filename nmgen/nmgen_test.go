package nmgen

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func TestIMin(t *testing.T) {
	ttable := []struct {
		a, b, res int32
	}{
		{1, 2, 1},
		{2, 1, 1},
		{1, 1, 1},
	}

	for _, tt := range ttable {
		got := iMin(tt.a, tt.b)
		if got != tt.res {
			t.Fatalf("iMin(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.res)
		}
	}
}

func TestIMax(t *testing.T) {
	ttable := []struct {
		a, b, res int32
	}{
		{1, 2, 2},
		{2, 1, 2},
		{1, 1, 1},
	}

	for _, tt := range ttable {
		got := iMax(tt.a, tt.b)
		if got != tt.res {
			t.Fatalf("iMax(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.res)
		}
	}
}

func TestIAbs(t *testing.T) {
	ttable := []struct {
		a, res int32
	}{
		{-1, 1},
		{1, 1},
		{0, 0},
	}

	for _, tt := range ttable {
		got := iAbs(tt.a)
		if got != tt.res {
			t.Fatalf("iAbs(%v) = %v, want %v", tt.a, got, tt.res)
		}
	}
}

func TestCalcGridSize(t *testing.T) {
	verts := []float32{
		1, 2, 3,
		0, 2, 6,
	}
	bmin, bmax := d3.NewVec3(), d3.NewVec3()
	CalcBounds(verts, 2, bmin, bmax)

	cellSize := float32(1.5)

	w, h := CalcGridSize(bmin, bmax, cellSize)
	if w != 1 {
		t.Fatalf("width should be 1, got %v", w)
	}
	if h != 2 {
		t.Fatalf("height should be 2, got %v", h)
	}
}

func TestSpanConnections(t *testing.T) {
	var s CompactSpan
	for dir := int32(0); dir < 4; dir++ {
		SetCon(&s, dir, NotConnected)
	}
	for dir := int32(0); dir < 4; dir++ {
		if got := GetCon(&s, dir); got != NotConnected {
			t.Fatalf("GetCon(s, %d) = %v, want NotConnected", dir, got)
		}
	}

	SetCon(&s, 2, 1)
	if got := GetCon(&s, 2); got != 1 {
		t.Fatalf("GetCon(s, 2) = %v, want 1", got)
	}
	// Other directions are untouched.
	for _, dir := range []int32{0, 1, 3} {
		if got := GetCon(&s, dir); got != NotConnected {
			t.Fatalf("GetCon(s, %d) = %v, want NotConnected", dir, got)
		}
	}
}

func TestDirOffsets(t *testing.T) {
	// The 4 directions are enumerated clockwise starting from west.
	ttable := []struct {
		dir, ox, oy int32
	}{
		{0, -1, 0},
		{1, 0, 1},
		{2, 1, 0},
		{3, 0, -1},
	}

	for _, tt := range ttable {
		if got := GetDirOffsetX(tt.dir); got != tt.ox {
			t.Fatalf("GetDirOffsetX(%v) = %v, want %v", tt.dir, got, tt.ox)
		}
		if got := GetDirOffsetY(tt.dir); got != tt.oy {
			t.Fatalf("GetDirOffsetY(%v) = %v, want %v", tt.dir, got, tt.oy)
		}
	}
}
