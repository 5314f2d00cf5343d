package wordfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wordfall/internal/core"
)

// cellRenderer draws a snapshot into a character grid.
type cellRenderer struct {
	dst   *core.Screen
	cellW float64
	cellH float64
}

// RenderCells draws a snapshot into a terminal screen whose cells are
// cellW x cellH playfield units.
func RenderCells(dst *core.Screen, s Snapshot, cellW, cellH float64) {
	r := cellRenderer{dst: dst, cellW: cellW, cellH: cellH}
	r.stars(s.Stars)
	r.safetyLine(s.SafetyLine)
	r.explosions(s.Explosions)
	r.enemies(s.Enemies, s.Active)
	r.projectiles(s.Projectiles)
	r.player(s.Player)

	switch s.Status {
	case core.StatusIdle:
		r.overlay(core.ColorCyan, "W O R D F A L L", "", "Type the falling words before", "they cross the line.", "", "Press Enter to start")
	case core.StatusGameOver:
		r.overlay(core.ColorRed, "G A M E   O V E R", "", fmt.Sprintf("Score: %d", s.Score), fmt.Sprintf("Level: %d", s.Level), "", "Enter: restart   Esc: quit")
	}
}

func (r cellRenderer) cell(v core.Vec) (int, int) {
	return int(math.Floor(v.X / r.cellW)), int(math.Floor(v.Y / r.cellH))
}

func (r cellRenderer) stars(stars []Star) {
	for _, st := range stars {
		x, y := r.cell(st.Pos)
		c := core.ColorDarkGray
		if st.Brightness > 0.7 {
			c = core.ColorGray
		}
		r.dst.SetColored(x, y, '.', c)
	}
}

func (r cellRenderer) safetyLine(lineY float64) {
	_, y := r.cell(core.Vec{Y: lineY})
	r.dst.DrawHLine(0, y, r.dst.Width(), '-', core.ColorDarkGray)
}

func (r cellRenderer) explosions(explosions []Explosion) {
	for _, ex := range explosions {
		for _, p := range ex.Particles {
			if p.Alpha <= 0 {
				continue
			}
			glyph := '.'
			switch {
			case p.Alpha > 0.66:
				glyph = '*'
			case p.Alpha > 0.33:
				glyph = '+'
			}
			x, y := r.cell(p.Pos)
			r.dst.SetColored(x, y, glyph, p.Color)
		}
	}
}

func (r cellRenderer) enemies(enemies []Enemy, active int) {
	for i := range enemies {
		en := &enemies[i]
		cx, y := r.cell(en.Pos)
		x := cx - len(en.Word)/2

		for j := 0; j < len(en.Word); j++ {
			c := core.ColorWhite
			switch {
			case j < en.Hit:
				c = core.ColorGreen
			case j < en.Typed:
				c = core.ColorGray
			case i == active:
				c = core.ColorBrightYellow
			}
			r.dst.SetColored(x+j, y, rune(en.Word[j]), c)
		}

		if i == active {
			r.dst.SetColored(x-2, y, '>', core.ColorCyan)
		}
	}
}

func (r cellRenderer) projectiles(projectiles []Projectile) {
	for _, p := range projectiles {
		x, y := r.cell(p.Pos)
		r.dst.SetColored(x, y, '•', core.ColorBrightYellow)
	}
}

func (r cellRenderer) player(p Player) {
	x, y := r.cell(p.Pos)
	r.dst.DrawTextColored(x-1, y, "▄█▄", core.ColorBlue)

	glyph, dx := barrelGlyph(p.Rotation)
	r.dst.SetColored(x+dx, y-1, glyph, core.ColorBrightBlue)
}

// barrelGlyph picks a character and column offset for a turret rotation.
func barrelGlyph(rotation float64) (rune, int) {
	switch {
	case rotation > 3*math.Pi/8:
		return '_', 1
	case rotation > math.Pi/8:
		return '/', 1
	case rotation < -3*math.Pi/8:
		return '_', -1
	case rotation < -math.Pi/8:
		return '\\', -1
	default:
		return '|', 0
	}
}

// overlay draws a centred box with the given lines.
func (r cellRenderer) overlay(c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 6
	h := len(lines) + 2

	x := (r.dst.Width() - w) / 2
	y := (r.dst.Height() - h) / 2
	box := core.NewRect(x, y, w, h)
	r.dst.DrawRect(box, ' ')
	r.dst.DrawBox(box, c)

	for i, l := range lines {
		r.dst.DrawTextCentered(y+1+i, l, core.ColorWhite)
	}
}
