package core

import "testing"

func TestCanvasTranslateSaveRestore(t *testing.T) {
	c := NewCanvas(NewScreen(10, 5))

	c.Save()
	c.Translate(2, 1)
	c.Save()
	c.Translate(-2, -1)
	if c.Translation() != (Vector{}) {
		t.Errorf("nested translation = %v, expected zero", c.Translation())
	}
	c.Restore()
	if c.Translation() != Vec(2, 1) {
		t.Errorf("after Restore() = %v, expected (2, 1)", c.Translation())
	}
	c.Restore()
	if c.Translation() != (Vector{}) {
		t.Errorf("after outer Restore() = %v, expected zero", c.Translation())
	}

	// Unbalanced restore is harmless
	c.Restore()
}

func TestCanvasFillRectRasterizes(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		translate  Vector
		row        int
		expected   string
	}{
		{"integer box", 1, 0, 3, 1, Vector{}, 0, " ### "},
		{"fractional start keeps width", 1.6, 0, 3, 1, Vector{}, 0, " ### "},
		{"tiny box covers one cell", 2.2, 0, 0.3, 1, Vector{}, 0, "  #  "},
		{"translated", 0, 0, 2, 1, Vec(3, 1), 1, "   ##"},
		{"clipped left", -1, 0, 3, 1, Vector{}, 0, "##   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 2)
			c := NewCanvas(s)
			c.Translate(tc.translate.X, tc.translate.Y)
			c.FillRect(tc.x, tc.y, tc.w, tc.h, '#', ColorDefault)
			if got := s.Row(tc.row); got != tc.expected {
				t.Errorf("Row(%d) = %q, expected %q", tc.row, got, tc.expected)
			}
		})
	}
}

func TestCanvasFillText(t *testing.T) {
	s := NewScreen(8, 2)
	c := NewCanvas(s)
	c.Translate(1, 1)
	c.FillText(0.9, -0.5, "hi", ColorYellow)

	if s.Row(0) != " hi     " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorYellow {
		t.Error("text should carry its colour")
	}
}

func TestCanvasClearIgnoresTranslation(t *testing.T) {
	s := NewScreen(3, 1)
	s.Fill('x', ColorDefault)
	c := NewCanvas(s)
	c.Translate(10, 10)
	c.Clear()
	if s.Row(0) != "   " {
		t.Errorf("Row(0) = %q after Clear", s.Row(0))
	}
}
