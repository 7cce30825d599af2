package core

import "math"

// Context is the 2D drawing surface handed to entities at render time.
// Coordinates are world units (one unit per terminal cell) and pass through
// the current translation before they are rasterized.
type Context interface {
	Width() int
	Height() int

	// Clear blanks the whole surface, ignoring the translation.
	Clear()

	// Save pushes the current translation; Restore pops it.
	// Restore on an empty stack is a no-op.
	Save()
	Restore()
	Translate(dx, dy float64)
	Translation() Vector

	FillRect(x, y, w, h float64, fill rune, c Color)
	StrokeRect(x, y, w, h float64, c Color)
	FillText(x, y float64, text string, c Color)
}

// Canvas implements Context over a Screen.
type Canvas struct {
	screen *Screen
	offset Vector
	stack  []Vector
}

// NewCanvas wraps s in a drawing context with an identity translation.
func NewCanvas(s *Screen) *Canvas {
	return &Canvas{screen: s}
}

// Screen returns the backing screen.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) Width() int  { return c.screen.Width() }
func (c *Canvas) Height() int { return c.screen.Height() }

func (c *Canvas) Clear() {
	c.screen.Clear()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.offset)
}

func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.offset = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.offset = c.offset.Add(Vector{X: dx, Y: dy})
}

func (c *Canvas) Translation() Vector {
	return c.offset
}

// span maps a world interval [pos, pos+size) to a half-open cell range.
// Any positive size covers at least one cell.
func span(pos, size float64) (int, int) {
	start := int(math.Floor(pos))
	end := int(math.Floor(pos + size))
	if size > 0 && end <= start {
		end = start + 1
	}
	return start, end
}

func (c *Canvas) FillRect(x, y, w, h float64, fill rune, col Color) {
	x0, x1 := span(x+c.offset.X, w)
	y0, y1 := span(y+c.offset.Y, h)
	c.screen.DrawRect(x0, y0, x1-x0, y1-y0, fill, col)
}

func (c *Canvas) StrokeRect(x, y, w, h float64, col Color) {
	x0, x1 := span(x+c.offset.X, w)
	y0, y1 := span(y+c.offset.Y, h)
	c.screen.DrawBox(x0, y0, x1-x0, y1-y0, col)
}

func (c *Canvas) FillText(x, y float64, text string, col Color) {
	cx := int(math.Floor(x + c.offset.X))
	cy := int(math.Floor(y + c.offset.Y))
	c.screen.DrawText(cx, cy, text, col)
}
