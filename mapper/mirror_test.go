package mapper_test

import (
	"testing"

	"github.com/katalvlaran/ledmap/mapper"
)

// TestMirror_SizeMapping verifies that mirroring never changes dimensions.
func TestMirror_SizeMapping(t *testing.T) {
	for _, horizontal := range []bool{true, false} {
		m := mapper.Mirror{Horizontal: horizontal}
		w, h := m.SizeMapping(128, 64)
		if w != 128 || h != 64 {
			t.Errorf("Mirror{%v}.SizeMapping(128,64) = (%d,%d); want (128,64)", horizontal, w, h)
		}
	}
}

// TestMirror_Horizontal checks the reflection formula on concrete points.
func TestMirror_Horizontal(t *testing.T) {
	m := mapper.Mirror{Horizontal: true}
	cases := []struct{ x, y, wantX, wantY int }{
		{0, 0, 63, 0},
		{63, 0, 0, 0},
		{10, 20, 53, 20},
		{31, 31, 32, 31},
	}
	for _, tc := range cases {
		gotX, gotY := m.MapVisibleToMatrix(64, 32, tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("Mirror:H (%d,%d) = (%d,%d); want (%d,%d)", tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

// TestMirror_Vertical checks the reflection formula on concrete points.
func TestMirror_Vertical(t *testing.T) {
	m := mapper.Mirror{Horizontal: false}
	cases := []struct{ x, y, wantX, wantY int }{
		{0, 0, 0, 31},
		{0, 31, 0, 0},
		{10, 20, 10, 11},
	}
	for _, tc := range cases {
		gotX, gotY := m.MapVisibleToMatrix(64, 32, tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("Mirror:V (%d,%d) = (%d,%d); want (%d,%d)", tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

// TestMirror_Involution sweeps a whole small matrix and verifies that
// applying the same mirror twice returns every coordinate unchanged.
func TestMirror_Involution(t *testing.T) {
	const w, h = 48, 24
	for _, horizontal := range []bool{true, false} {
		m := mapper.Mirror{Horizontal: horizontal}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				mx, my := m.MapVisibleToMatrix(w, h, x, y)
				rx, ry := m.MapVisibleToMatrix(w, h, mx, my)
				if rx != x || ry != y {
					t.Fatalf("Mirror{%v} twice (%d,%d) = (%d,%d); want identity", horizontal, x, y, rx, ry)
				}
			}
		}
	}
}
