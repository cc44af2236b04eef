package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/diegok/pongsim/internal/geom"
	"github.com/diegok/pongsim/internal/loop"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Renderer maps court coordinates onto terminal cells
type Renderer struct {
	screen *Screen
	court  geom.Vec2 // court size in court units
}

// NewRenderer creates a renderer for a court of the given size
func NewRenderer(screen *Screen, court geom.Vec2) *Renderer {
	return &Renderer{screen: screen, court: court}
}

// viewport is the cell grid of the play area: every row below the scoreboard
type viewport struct {
	w, h           int
	top            int
	scaleX, scaleY float64 // cells per court unit
}

func (r *Renderer) viewport() viewport {
	screenW, screenH := r.screen.Size()
	v := viewport{w: screenW, h: screenH - 1, top: 1}
	if v.h < 1 {
		v.h = 1
	}
	v.scaleX = float64(v.w) / r.court.X
	v.scaleY = float64(v.h) / r.court.Y
	return v
}

// cell returns the court-space rectangle covered by cell (cx, cy)
func (v viewport) cell(cx, cy int) geom.Rect {
	return geom.Rect{
		Min:  geom.V(float64(cx)/v.scaleX, float64(cy)/v.scaleY),
		Size: geom.V(1/v.scaleX, 1/v.scaleY),
	}
}

// span returns the cell range [lo, hi) touched by a court-space rectangle, clipped to the grid
func (v viewport) span(b geom.Rect) (x0, y0, x1, y1 int) {
	m := b.Max()
	x0 = clampInt(int(math.Floor(b.Min.X*v.scaleX)), 0, v.w)
	x1 = clampInt(int(math.Ceil(m.X*v.scaleX)), 0, v.w)
	y0 = clampInt(int(math.Floor(b.Min.Y*v.scaleY)), 0, v.h)
	y1 = clampInt(int(math.Ceil(m.Y*v.scaleY)), 0, v.h)
	return
}

// RenderFrame draws the court and scoreboard
func (r *Renderer) RenderFrame(f loop.Frame) {
	r.screen.Clear()
	v := r.viewport()

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, v.top, v.w, v.h, courtStyle, ' ')

	// Draw center dashed line
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := v.top; y < v.top+v.h; y += 2 {
		r.screen.SetCell(v.w/2, y, lineStyle, '|')
	}

	for _, d := range f.Drawables {
		style := FillStyle(d.Fill())
		switch s := d.Shape().(type) {
		case geom.Rect:
			r.drawRect(v, s, style)
		case geom.Circle:
			r.drawCircle(v, s, style)
		}
	}

	r.renderScoreboard(f.Scores, v.w)
	r.screen.Show()
}

// drawRect fills every cell the rectangle overlaps
func (r *Renderer) drawRect(v viewport, rect geom.Rect, style tcell.Style) {
	x0, y0, x1, y1 := v.span(rect)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if v.cell(cx, cy).Intersects(rect) {
				r.screen.SetCell(cx, v.top+cy, style, PaddleChar)
			}
		}
	}
}

// drawCircle fills the cells whose centers fall in the disc. A disc smaller
// than a cell is drawn as a single ball glyph.
func (r *Renderer) drawCircle(v viewport, c geom.Circle, style tcell.Style) {
	x0, y0, x1, y1 := v.span(c.Bounds())
	drawn := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if c.Contains(v.cell(cx, cy).Center()) {
				r.screen.SetCell(cx, v.top+cy, style, PaddleChar)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}
	cx := int(c.Center.X * v.scaleX)
	cy := int(c.Center.Y * v.scaleY)
	if cx >= 0 && cx < v.w && cy >= 0 && cy < v.h {
		r.screen.SetCell(cx, v.top+cy, style, BallChar)
	}
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(scores [2]uint, screenW int) {
	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, 0, barStyle, ' ')
	}

	text := ScoreboardText(scores)
	x := (screenW - uniseg.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, 0, text, barStyle.Bold(true))
}

// ScoreboardText formats the score line: [ LEFT 3 - 2 RIGHT ]
func ScoreboardText(scores [2]uint) string {
	return fmt.Sprintf("[ LEFT %d - %d RIGHT ]", scores[0], scores[1])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
