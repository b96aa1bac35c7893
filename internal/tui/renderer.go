// Package tui runs the game in a terminal. Logical canvas pixels are scaled
// onto character cells and every primitive is painted as cell backgrounds.
package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/gdamore/tcell/v2"
)

// Renderer implements pong.Renderer on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	sx, sy float64 // cells per logical pixel
	cols   int
	rows   int
}

// NewRenderer maps a canvasW×canvasH logical canvas onto the whole screen.
func NewRenderer(screen tcell.Screen, canvasW, canvasH float64) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen: screen,
		sx:     float64(cols) / math.Max(canvasW, 1),
		sy:     float64(rows) / math.Max(canvasH, 1),
		cols:   cols,
		rows:   rows,
	}
}

// cellSpan converts [from, from+size) in logical pixels to a cell range. A
// non-empty span always covers at least one cell so thin shapes stay visible.
func cellSpan(from, size, scale float64, limit int) (int, int) {
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil((from + size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}

func (r *Renderer) DrawRect(x, y, w, h float64, c color.Color) {
	x0, x1 := cellSpan(x, w, r.sx, r.cols)
	y0, y1 := cellSpan(y, h, r.sy, r.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			_, _, st, _ := r.screen.GetContent(cx, cy)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(blend(c, bg)))
		}
	}
}

// DrawCircle fills the cells under the circle's bounding box; at terminal
// resolution the ball is rarely more than two cells across.
func (r *Renderer) DrawCircle(cx, cy, rad float64, c color.Color) {
	r.DrawRect(cx-rad, cy-rad, rad*2, rad*2, c)
}

func (r *Renderer) DrawText(s string, x, y float64, style pong.TextStyle, c color.Color) {
	n := utf8.RuneCountInString(s)
	col := int(math.Floor(x * r.sx))
	switch style.Align {
	case pong.AlignCenter:
		col -= n / 2
	case pong.AlignRight:
		col -= n
	}
	// y is a baseline: use the cell row that ends at or below it.
	row := int(math.Ceil(y*r.sy)) - 1
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range s {
		if col >= 0 && col < r.cols {
			_, _, st, _ := r.screen.GetContent(col, row)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(col, row, ch, nil,
				tcell.StyleDefault.Background(bg).Foreground(blend(c, bg)).Bold(style.Size >= 40))
		}
		col++
	}
}

// blend composites c over the cell colour under it. Cells without an RGB
// colour count as black.
func blend(c color.Color, under tcell.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	}
	ur, ug, ub := under.RGB()
	if ur < 0 {
		ur, ug, ub = 0, 0, 0
	}
	keep := float64(0xffff-a) / 0xffff
	mix := func(src uint32, dst int32) int32 {
		return int32(math.Round(float64(src>>8) + float64(dst)*keep))
	}
	return tcell.NewRGBColor(mix(r, ur), mix(g, ug), mix(b, ub))
}
