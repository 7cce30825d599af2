package jumper

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
)

// PlatformType is the collision tag the player lands on.
const PlatformType = "platform"

const platformChar = '▀'

// minGap is the smallest vertical step between rows, in cells.
const minGap = 1.0

// Platform is a static ledge in world space.
type Platform struct {
	engine.Base
	Color core.Color
	Row   int // Layout row, 0 for the base platform
}

// NewPlatform creates a platform with its top-left corner at (x, y).
func NewPlatform(x, y, w, h float64, color core.Color) *Platform {
	return &Platform{
		Base: engine.Base{
			Kind:   PlatformType,
			Pos:    core.Vec(x, y),
			Extent: core.Vec(w, h),
		},
		Color: color,
	}
}

func (p *Platform) Render(ctx core.Context) {
	ctx.FillRect(p.Pos.X, p.Pos.Y, p.Extent.X, p.Extent.Y, platformChar, p.Color)
}

// Spawner lays platforms out row by row above the base platform and drops
// the ones that scroll out below the view. Row positions depend only on the
// seed and the row number.
type Spawner struct {
	cfg  config.JumperPlatforms
	diff *config.DifficultyManager
	seed int64

	nextRow int
	nextY   float64 // World y of the next row to place
	live    []*Platform
}

// NewSpawner creates a spawner. diff may be nil for a fixed layout.
func NewSpawner(cfg config.JumperPlatforms, diff *config.DifficultyManager, seed int64) *Spawner {
	return &Spawner{cfg: cfg, diff: diff, seed: seed}
}

// Base places the base platform and the initial rows above it, and returns
// the base platform.
func (s *Spawner) Base(e *engine.Engine) *Platform {
	y := e.Height() - s.cfg.BaseFromDown
	base := NewPlatform(s.cfg.BaseX, y, s.cfg.Width, s.cfg.Height, s.cfg.Color)
	s.add(e, base)

	s.nextRow = 1
	s.nextY = y
	for range s.cfg.InitialCount {
		s.spawnRow(e, 0)
	}
	return base
}

// Tick keeps rows generated up to the lookahead above the view and removes
// platforms below it.
func (s *Spawner) Tick(e *engine.Engine, score int) {
	viewTop := -e.GameOffset.Y
	viewBottom := viewTop + e.Height()
	limit := viewTop - s.cfg.Lookahead*e.Height()
	if math.IsNaN(limit) || math.IsInf(limit, 0) {
		limit = viewTop
	}

	for s.nextY > limit {
		s.spawnRow(e, score)
	}

	kept := s.live[:0]
	for _, p := range s.live {
		if p.Pos.Y > viewBottom {
			e.RemoveEntity(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.live[len(kept):])
	s.live = kept
}

func (s *Spawner) spawnRow(e *engine.Engine, score int) {
	frames := int(e.Frames())
	gap, width := s.cfg.Gap, s.cfg.Width
	if s.diff != nil {
		gap = s.diff.Gap(s.cfg.Gap, s.cfg.MaxGap, score, frames)
		width = s.diff.PlatformWidth(s.cfg.Width, score, frames)
	}
	// Rows never overlap and always move up, whatever the settings say.
	gap = max(gap, s.cfg.Height+1, minGap)
	if math.IsNaN(gap) {
		gap = minGap
	}

	s.nextY -= gap
	x := s.Column(s.nextRow) * max(0, e.Width()-width)
	p := NewPlatform(x, s.nextY, width, s.cfg.Height, s.cfg.Color)
	p.Row = s.nextRow
	s.nextRow++
	s.add(e, p)
}

func (s *Spawner) add(e *engine.Engine, p *Platform) {
	s.live = append(s.live, p)
	e.AddEntity(p)
}

// Column returns the horizontal position of a row as a fraction in [0, 1).
func (s *Spawner) Column(row int) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(s.seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(row))
	return float64(xxhash.Sum64(buf[:])>>11) / (1 << 53)
}

// Platforms returns the platforms currently in play, lowest first.
func (s *Spawner) Platforms() []*Platform {
	out := make([]*Platform, len(s.live))
	copy(out, s.live)
	return out
}

// SetConfig applies new layout settings to rows not yet placed.
func (s *Spawner) SetConfig(cfg config.JumperPlatforms, diff *config.DifficultyManager) {
	s.cfg = cfg
	s.diff = diff
}
