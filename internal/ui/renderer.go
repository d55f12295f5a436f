package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/shinobiduel/internal/game"
	"github.com/samdwyer/shinobiduel/internal/particle"
	"github.com/samdwyer/shinobiduel/internal/world"
)

// Palette for the backdrop and fighter details.
var (
	skyTop       = hex("#87CEEB")
	skyBottom    = hex("#E0F6FF")
	sunColor     = hex("#FFD700")
	white        = hex("#FFFFFF")
	mountainTone = hex("#3A421A")
	groundTop    = hex("#228B22")
	groundBottom = hex("#006400")
	skinColor    = hex("#FFE4B5")
	feetColor    = hex("#8B4513")
	swingActive  = hex("#FFFF00")
	swingFading  = hex("#FFA500")
)

// cloudOpacity is how much white a cloud mixes into the sky behind it.
const cloudOpacity = 0.8

// swingLength is how far an attack swing reaches past the body, in stage units.
const swingLength = 50.0

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toTcell converts a colorful color to a tcell true color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// viewport maps stage coordinates onto terminal cells.
type viewport struct {
	cols, rows int
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / world.Width))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * float64(v.rows) / world.Height))
}

// center returns the stage point at the middle of a cell.
func (v viewport) center(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * world.Width / float64(v.cols)
	y = (float64(row) + 0.5) * world.Height / float64(v.rows)
	return x, y
}

// Renderer draws snapshots to the screen.
type Renderer struct {
	screen *Screen
	stage  world.Stage
	view   viewport
	mono   bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		stage:  world.Default(),
		mono:   screen.Colors() < 256,
	}
}

// Render draws one frame: backdrop, particles, fighters, HUD and any overlay.
func (r *Renderer) Render(snap game.Snapshot) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	r.view = viewport{cols: cols, rows: rows}
	r.screen.Clear()

	r.drawBackdrop()

	switch snap.State {
	case game.StateStart:
		r.drawStartScreen()
	default:
		r.drawParticles(snap.Particles)
		r.drawFighter(snap.Player)
		r.drawFighter(snap.Opponent)
		for _, e := range snap.Enemies {
			r.drawFighter(e)
			r.drawEnemyLabel(e)
		}
		r.drawHUD(snap)
		if snap.State == game.StateOver {
			r.drawGameOver(snap.Winner)
		}
	}

	r.screen.Show()
}

// ===== Backdrop =====

// terrainColor is the backdrop color at a stage point.
func (r *Renderer) terrainColor(x, y float64) colorful.Color {
	sky := skyTop.BlendRgb(skyBottom, clamp01(y/world.Height))
	switch r.stage.TerrainAt(x, y) {
	case world.TerrainGround:
		t := (y - r.stage.GroundLine()) / world.GroundHeight
		return groundTop.BlendRgb(groundBottom, clamp01(t))
	case world.TerrainMountain:
		return mountainTone
	case world.TerrainSun:
		return sunColor
	case world.TerrainCloud:
		return sky.BlendRgb(white, cloudOpacity)
	default:
		return sky
	}
}

func (r *Renderer) drawBackdrop() {
	for row := 0; row < r.view.rows; row++ {
		for col := 0; col < r.view.cols; col++ {
			x, y := r.view.center(col, row)
			if r.mono {
				t := r.stage.TerrainAt(x, y)
				r.screen.SetContent(col, row, t.Rune(), tcell.StyleDefault)
				continue
			}
			bg := toTcell(r.terrainColor(x, y))
			r.screen.SetContent(col, row, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// ===== Actors =====

func (r *Renderer) drawParticles(ps []particle.Particle) {
	for _, p := range ps {
		col, row := r.view.col(p.X), r.view.row(p.Y)
		x, y := r.view.center(col, row)
		bg := r.terrainColor(x, y)
		fg := bg.BlendRgb(p.Color, clamp01(p.Alpha))

		glyph := '·'
		if p.Size >= 2.5 {
			glyph = '•'
		}
		r.screen.SetContent(col, row, glyph, tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(fg)))
	}
}

// fillRect paints every cell a stage rectangle touches, at least one cell.
func (r *Renderer) fillRect(x, y, w, h float64, c colorful.Color) {
	c0, c1 := r.view.col(x), r.view.col(x+w)
	r0, r1 := r.view.row(y), r.view.row(y+h)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	style := tcell.StyleDefault.Background(toTcell(c))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if col >= 0 && col < r.view.cols && row >= 0 && row < r.view.rows {
				r.screen.SetContent(col, row, ' ', style)
			}
		}
	}
}

func (r *Renderer) drawFighter(f game.FighterView) {
	r.fillRect(f.X, f.Y, f.Width, f.Height, f.Color)
	r.fillRect(f.X+10, f.Y-20, 30, 30, skinColor)

	// Hands and feet.
	r.fillRect(f.X-5, f.Y+30, 10, 20, skinColor)
	r.fillRect(f.X+f.Width-5, f.Y+30, 10, 20, skinColor)
	r.fillRect(f.X+5, f.Y+f.Height-10, 15, 10, feetColor)
	r.fillRect(f.X+f.Width-20, f.Y+f.Height-10, 15, 10, feetColor)

	eye := tcell.StyleDefault.Background(toTcell(skinColor)).Foreground(tcell.ColorBlack)
	glyph := '•'
	if f.Sharingan {
		eye = eye.Foreground(tcell.ColorRed).Bold(true)
		glyph = '◉'
	}
	eyeRow := r.view.row(f.Y - 12.5)
	r.screen.SetContent(r.view.col(f.X+19), eyeRow, glyph, eye)
	r.screen.SetContent(r.view.col(f.X+31), eyeRow, glyph, eye)

	if f.AttackAnimation > 0 {
		r.drawSwing(f)
	}
}

// drawSwing draws the attack trail from the body edge in the swing direction.
func (r *Renderer) drawSwing(f game.FighterView) {
	startX, endX := f.X+f.Width, f.X+f.Width+swingLength
	if f.AttackDirection < 0 {
		startX, endX = f.X-swingLength, f.X
	}
	tone := swingFading
	if f.Attacking {
		tone = swingActive
	}

	row := r.view.row(f.Y + 30)
	for col := r.view.col(startX); col <= r.view.col(endX); col++ {
		x, y := r.view.center(col, row)
		style := tcell.StyleDefault.Background(toTcell(r.terrainColor(x, y))).Foreground(toTcell(tone))
		r.screen.SetContent(col, row, '━', style)
	}
}

func (r *Renderer) drawEnemyLabel(f game.FighterView) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.screen.SetText(r.view.col(f.X), r.view.row(f.Y-20)-1, fmt.Sprintf("Lvl %d", f.Level), style)
}

// ===== HUD and overlays =====

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)

func (r *Renderer) drawHUD(snap game.Snapshot) {
	p, o := snap.Player, snap.Opponent
	r.screen.SetText(0, 0, fmt.Sprintf("%s Health: %d", p.Name, floor(p.Health)), hudStyle)
	r.screen.SetText(0, 1, fmt.Sprintf("%s Chakra: %d", p.Name, floor(p.Chakra)), hudStyle)

	right := fmt.Sprintf("%s Health: %d", o.Name, floor(o.Health))
	r.screen.SetText(r.view.cols-len(right), 0, right, hudStyle)

	level := fmt.Sprintf("Level: %d", snap.Level)
	r.screen.SetText((r.view.cols-len(level))/2, 0, level, hudStyle)

	if p.Sharingan {
		r.screen.SetText(0, 2, "Sharingan", hudStyle.Foreground(tcell.ColorRed))
	}
}

func (r *Renderer) drawCentered(row int, text string, style tcell.Style) {
	r.screen.SetText((r.view.cols-len([]rune(text)))/2, row, text, style)
}

// shade blacks out a band of rows behind overlay text.
func (r *Renderer) shade(from, to int) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for row := max(from, 0); row <= min(to, r.view.rows-1); row++ {
		for col := 0; col < r.view.cols; col++ {
			r.screen.SetContent(col, row, ' ', style)
		}
	}
}

func (r *Renderer) drawStartScreen() {
	mid := r.view.rows / 2
	r.shade(mid-3, mid+3)
	r.drawCentered(mid-2, "Obito vs Kakashi", hudStyle.Foreground(tcell.ColorOrangeRed))
	r.drawCentered(mid, "Press Space to Start", hudStyle)
	r.drawCentered(mid+2, "A/D move  Space jump  Q attack  W special  E kamui  R sharingan  Esc quit", tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack))
}

func (r *Renderer) drawGameOver(winner string) {
	mid := r.view.rows / 2
	r.shade(mid-2, mid+3)
	r.drawCentered(mid, winner+" Wins!", hudStyle)
	r.drawCentered(mid+2, "Press Space to Play Again", hudStyle)
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
