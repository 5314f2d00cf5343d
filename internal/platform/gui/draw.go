package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/wordfall/internal/assets"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
)

var (
	backgroundColor = color.RGBA{0x0b, 0x0e, 0x1a, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// painter draws snapshots onto the window.
type painter struct {
	sprite     *assets.ImageHandle
	spriteImg  *ebiten.Image
	lineHeight float64
}

func newPainter(sprite *assets.ImageHandle) *painter {
	return &painter{sprite: sprite, lineHeight: lineHeight(wordFace)}
}

func (p *painter) draw(screen *ebiten.Image, s wordfall.Snapshot, muted bool) {
	screen.Fill(backgroundColor)

	p.stars(screen, s.Stars)
	p.safetyLine(screen, s)
	p.explosions(screen, s.Explosions)
	p.enemies(screen, s.Enemies, s.Active)
	p.projectiles(screen, s.Projectiles)
	p.player(screen, s.Player)
	p.hud(screen, s, muted)

	switch s.Status {
	case core.StatusIdle:
		p.overlay(screen, core.ColorCyan, "W O R D F A L L", "", "Type the falling words before they cross the line.", "", "Press Enter to start")
	case core.StatusGameOver:
		p.overlay(screen, core.ColorRed, "G A M E   O V E R", "", fmt.Sprintf("Score: %d", s.Score), fmt.Sprintf("Level: %d", s.Level), "", "Enter: restart   Esc: quit")
	}
}

func (p *painter) stars(dst *ebiten.Image, stars []wordfall.Star) {
	for _, st := range stars {
		c := core.ColorWhite.RGBA(st.Brightness)
		vector.DrawFilledRect(dst, float32(st.Pos.X), float32(st.Pos.Y), float32(st.Size), float32(st.Size), c, false)
	}
}

func (p *painter) safetyLine(dst *ebiten.Image, s wordfall.Snapshot) {
	c := core.ColorRed.RGBA(0.5)
	y := float32(s.SafetyLine)
	for x := float32(0); x < float32(s.Width); x += 16 {
		vector.StrokeLine(dst, x, y, x+8, y, 2, c, true)
	}
}

func (p *painter) explosions(dst *ebiten.Image, explosions []wordfall.Explosion) {
	for _, ex := range explosions {
		ring := core.ColorOrange
		if ex.Kind == wordfall.ExplosionMiss {
			ring = core.ColorRed
		}
		vector.StrokeCircle(dst, float32(ex.Pos.X), float32(ex.Pos.Y), float32(ex.Radius), 2, ring.RGBA(ex.Alpha), true)

		for _, pt := range ex.Particles {
			if pt.Alpha <= 0 {
				continue
			}
			vector.DrawFilledCircle(dst, float32(pt.Pos.X), float32(pt.Pos.Y), float32(pt.Radius), pt.Color.RGBA(pt.Alpha), true)
		}
	}
}

func (p *painter) enemies(dst *ebiten.Image, enemies []wordfall.Enemy, active int) {
	m := faceMeasurer{face: wordFace}
	for i := range enemies {
		en := &enemies[i]

		if i == active {
			x := float32(en.Left())
			y := float32(en.Pos.Y - en.Height/2)
			vector.StrokeRect(dst, x, y, float32(en.Width), float32(en.Height), 1, core.ColorCyan.RGBA(0.8), true)
		}

		left := en.Pos.X - m.MeasureText(en.Word)/2
		baseline := int(en.Pos.Y + p.lineHeight/2 - 2)
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
			x := int(left + m.MeasureText(en.Word[:j]))
			text.Draw(dst, en.Word[j:j+1], wordFace, x, baseline, c.RGBA(1))
		}
	}
}

func (p *painter) projectiles(dst *ebiten.Image, projectiles []wordfall.Projectile) {
	img := p.projectileImage()
	for _, pr := range projectiles {
		if img == nil {
			vector.DrawFilledCircle(dst, float32(pr.Pos.X), float32(pr.Pos.Y), float32(pr.Radius), core.ColorBrightYellow.RGBA(1), true)
			continue
		}

		// Sprites point up; the projectile angle is measured from +x
		b := img.Bounds()
		size := 2 * pr.Radius
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
		op.GeoM.Rotate(pr.Angle + math.Pi/2)
		op.GeoM.Translate(pr.Pos.X, pr.Pos.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}
}

// projectileImage converts the sprite once it has loaded.
func (p *painter) projectileImage() *ebiten.Image {
	if p.spriteImg != nil {
		return p.spriteImg
	}
	if !p.sprite.Ready() {
		return nil
	}
	p.spriteImg = ebiten.NewImageFromImage(p.sprite.Image())
	return p.spriteImg
}

func (p *painter) player(dst *ebiten.Image, pl wordfall.Player) {
	x, y := float32(pl.Pos.X), float32(pl.Pos.Y)
	w, h := float32(pl.Width), float32(pl.Height)

	// Barrel first so the body covers its base
	length := pl.Height/2 + 12
	tip := core.Vec{
		X: pl.Pos.X + math.Sin(pl.Rotation)*length,
		Y: pl.Pos.Y - math.Cos(pl.Rotation)*length,
	}
	vector.StrokeLine(dst, x, y, float32(tip.X), float32(tip.Y), 6, core.ColorBrightBlue.RGBA(1), true)

	vector.DrawFilledRect(dst, x-w/2, y, w, h/2, core.ColorBlue.RGBA(1), true)
	vector.DrawFilledCircle(dst, x, y, w/3, core.ColorBlue.RGBA(1), true)
}

func (p *painter) hud(dst *ebiten.Image, s wordfall.Snapshot, muted bool) {
	status := fmt.Sprintf("Score: %d   Lives: %d   Level: %d", s.Score, s.Lives, s.Level)
	if muted {
		status += "   [muted]"
	}
	text.Draw(dst, status, wordFace, 10, 20, core.ColorWhite.RGBA(1))
	text.Draw(dst, "Tab: mute   Esc: quit", wordFace, 10, int(s.Height)-10, core.ColorGray.RGBA(1))
}

func (p *painter) overlay(dst *ebiten.Image, accent core.Color, lines ...string) {
	m := faceMeasurer{face: wordFace}
	width := 0.0
	for _, l := range lines {
		width = math.Max(width, m.MeasureText(l))
	}
	width += 60
	height := float64(len(lines)+2) * p.lineHeight

	b := dst.Bounds()
	x := (float64(b.Dx()) - width) / 2
	y := (float64(b.Dy()) - height) / 2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), overlayColor, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), 2, accent.RGBA(1), true)

	for i, l := range lines {
		lx := int(float64(b.Dx())/2 - m.MeasureText(l)/2)
		ly := int(y + float64(i+2)*p.lineHeight)
		text.Draw(dst, l, wordFace, lx, ly, core.ColorWhite.RGBA(1))
	}
}
