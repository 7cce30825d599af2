package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Clear()
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xy", core.ColorGreen)

	out := ansi.Strip(RenderScreen(s))
	assert.Equal(t, "abcd  \nxy    ", out)
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'z', core.Color(200))

	assert.Equal(t, "z  ", ansi.Strip(RenderScreen(s)))
}

func TestRenderScreenPlainCellsHaveNoEscapes(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.SetColored(0, 0, 'a', core.ColorDefault)
	s.SetColored(1, 0, 'b', core.Color(99))
	s.SetColored(2, 0, 'c', core.Color(250))
	// A coloured blank run carries nothing visible.
	s.DrawText(0, 1, "   ", core.ColorOrange)

	assert.Equal(t, "abc  \n     ", RenderScreen(s))
}

func TestStyleFor(t *testing.T) {
	_, ok := styleFor(core.ColorDefault)
	assert.False(t, ok)
	_, ok = styleFor(core.Color(200))
	assert.False(t, ok)
	_, ok = styleFor(core.ColorGray)
	assert.True(t, ok)
}
