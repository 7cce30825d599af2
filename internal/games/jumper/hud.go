package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
)

// Wallpaper is the scrolling background grid. It is drawn in screen space
// and shifted by the camera offset times the parallax factor.
type Wallpaper struct {
	engine.Base
	cfg       config.WallpaperConfig
	threshold float64
	shift     core.Vector
}

// NewWallpaper creates the background. threshold is the camera line as a
// fraction of the screen height.
func NewWallpaper(cfg config.WallpaperConfig, threshold float64) *Wallpaper {
	return &Wallpaper{
		Base:      engine.Base{Kind: "wallpaper", NoCollision: true, ScreenSpace: true},
		cfg:       cfg,
		threshold: threshold,
	}
}

func (w *Wallpaper) Update(_ float64, e *engine.Engine) {
	w.shift = e.GameOffset.Scale(w.cfg.Parallax)
}

// phase returns the first grid line at or after 0 for lines every step
// cells shifted by off.
func phase(off float64, step int) int {
	return int(math.Floor(math.Mod(math.Mod(off, float64(step))+float64(step), float64(step))))
}

func (w *Wallpaper) Render(ctx core.Context) {
	width, height := ctx.Width(), ctx.Height()
	cw, ch := w.cfg.CellWidth, w.cfg.CellHeight

	if ch > 0 {
		for y := phase(w.shift.Y, ch); y < height; y += ch {
			ctx.FillRect(0, float64(y), float64(width), 1, '┈', w.cfg.GridColor)
		}
	}
	if cw > 0 {
		for x := phase(w.shift.X, cw); x < width; x += cw {
			ctx.FillRect(float64(x), 0, 1, float64(height), '┊', w.cfg.GridColor)
		}
	}
	if cw > 0 && ch > 0 {
		for y := phase(w.shift.Y, ch); y < height; y += ch {
			for x := phase(w.shift.X, cw); x < width; x += cw {
				ctx.FillText(float64(x), float64(y), "┼", w.cfg.GridColor)
			}
		}
	}

	if w.cfg.ShowThreshold {
		y := math.Floor(w.threshold * float64(height))
		ctx.FillRect(0, y, float64(width), 1, '─', w.cfg.ThresholdColor)
	}
}

// Header is the score bar pinned to the top of the screen.
type Header struct {
	engine.Base
	Score int
	Best  int
}

// NewHeader creates an empty header.
func NewHeader() *Header {
	return &Header{Base: engine.Base{Kind: "header", NoCollision: true, ScreenSpace: true}}
}

func (h *Header) Render(ctx core.Context) {
	width := float64(ctx.Width())
	ctx.FillRect(0, 0, width, 1, ' ', core.ColorDefault)
	ctx.FillRect(0, 1, width, 1, '▔', core.ColorGray)

	ctx.FillText(1, 0, fmt.Sprintf("Score: %d", h.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", h.Best)
	ctx.FillText(width-float64(len(best))-1, 0, best, core.ColorBrightYellow)
}

// Banner is the game over message.
type Banner struct {
	engine.Base
	Score int
	Best  int
}

// NewBanner creates a banner for a finished run.
func NewBanner(score, best int) *Banner {
	return &Banner{
		Base:  engine.Base{Kind: "banner", NoCollision: true, ScreenSpace: true},
		Score: score,
		Best:  best,
	}
}

func (b *Banner) Render(ctx core.Context) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", b.Score),
		"",
		"r restart   q quit",
	}
	if b.Score > 0 && b.Score >= b.Best {
		lines[2] = "New best!"
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	x := float64(ctx.Width()-boxW) / 2
	y := float64(ctx.Height()-boxH) / 2
	x, y = math.Floor(x), math.Floor(y)

	ctx.FillRect(x, y, float64(boxW), float64(boxH), ' ', core.ColorDefault)
	ctx.StrokeRect(x, y, float64(boxW), float64(boxH), core.ColorBrightRed)
	for i, l := range lines {
		lx := x + math.Floor(float64(boxW-len(l))/2)
		ctx.FillText(lx, y+1+float64(i), l, core.ColorBrightWhite)
	}
}
