package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of a TermCanvas.
type Cell struct {
	Glyph string // "" when nothing was drawn
	Fg    color.NRGBA
	Bg    color.NRGBA // zero alpha inside a layer means unset
	Bold  bool
	Rule  bool // underlined by a thin rect below the row
	cont  bool // right half of a wide glyph
}

type grid struct {
	cols, rows int
	cells      []Cell
}

func newGrid(cols, rows int) *grid {
	return &grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

func (g *grid) at(col, row int) *Cell {
	return &g.cells[row*g.cols+col]
}

type canvasState struct {
	dx, dy int
	clip   gfx.Rect // absolute virtual units
	grid   *grid
	layer  bool
}

// TermCanvas rasterizes gfx drawing onto terminal cells. X is in columns,
// Y is in virtual pixels with Scale pixels per row. A cell belongs to a
// rect when the row's vertical center lies inside it.
//
// Opaque fills only set the background, so glyphs stay readable under
// them. Translucent fills blend both colors. An opaque rect thinner than a
// row draws as an underline of the row above the nearest row boundary.
type TermCanvas struct {
	Scale int
	fg    color.NRGBA
	bg    color.NRGBA
	base  *grid
	stack []canvasState
	cur   canvasState
}

// NewTermCanvas returns a cols×rows canvas filled with bg, drawing text in fg
// unless a paint names a color.
func NewTermCanvas(cols, rows, scale int, fg, bg color.Color) *TermCanvas {
	cols, rows, scale = max(cols, 0), max(rows, 0), max(scale, 1)
	c := &TermCanvas{
		Scale: scale,
		fg:    color.NRGBAModel.Convert(fg).(color.NRGBA),
		bg:    color.NRGBAModel.Convert(bg).(color.NRGBA),
		base:  newGrid(cols, rows),
	}
	for i := range c.base.cells {
		c.base.cells[i].Bg = c.bg
	}
	c.cur = canvasState{clip: gfx.R(0, 0, cols, rows*scale), grid: c.base}
	return c
}

// Size returns the canvas size in cells.
func (c *TermCanvas) Size() (cols, rows int) { return c.base.cols, c.base.rows }

func (c *TermCanvas) Save() int {
	n := len(c.stack)
	c.stack = append(c.stack, c.cur)
	return n
}

func (c *TermCanvas) SaveLayer(rect gfx.Rect, _ gfx.Paint) int {
	n := c.Save()
	c.cur.clip = c.cur.clip.Intersect(rect.Add(gfx.Point{X: c.cur.dx, Y: c.cur.dy}))
	c.cur.grid = newGrid(c.base.cols, c.base.rows)
	c.cur.layer = true
	return n
}

func (c *TermCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	popped := c.cur
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if popped.layer && popped.grid != c.cur.grid {
		c.composite(popped.grid, c.cur.grid)
	}
}

func (c *TermCanvas) RestoreToCount(count int) {
	for len(c.stack) > count {
		c.Restore()
	}
}

func (c *TermCanvas) Translate(dx, dy int) {
	c.cur.dx += dx
	c.cur.dy += dy
}

func (c *TermCanvas) ClipRect(rect gfx.Rect) {
	c.cur.clip = c.cur.clip.Intersect(rect.Add(gfx.Point{X: c.cur.dx, Y: c.cur.dy}))
}

func (c *TermCanvas) DrawRect(rect gfx.Rect, paint gfx.Paint) {
	if paint.Color == nil {
		return
	}
	abs := rect.Add(gfx.Point{X: c.cur.dx, Y: c.cur.dy})
	src := color.NRGBAModel.Convert(paint.Color).(color.NRGBA)
	if src.A == 0 {
		return
	}

	if paint.Mode == gfx.SrcIn {
		c.eachCell(abs, func(cell *Cell) {
			if cell.Glyph != "" {
				cell.Fg = gfx.Lerp(cell.Fg, opaqueOf(src), gfx.Alpha(src))
			}
		})
		return
	}

	if src.A == 0xff && abs.Dy() < c.Scale {
		c.drawRule(abs, src)
		return
	}
	c.eachCell(abs, func(cell *Cell) {
		if cell.Bg.A == 0 || src.A == 0xff {
			cell.Bg = src
		} else {
			cell.Bg = gfx.Over(cell.Bg, src)
		}
		if src.A < 0xff && cell.Glyph != "" {
			cell.Fg = gfx.Over(cell.Fg, src)
		}
	})
}

func (c *TermCanvas) drawRule(abs gfx.Rect, src color.NRGBA) {
	mid := (abs.Min.Y + abs.Max.Y) / 2
	row := floorDiv(mid+c.Scale/2, c.Scale) - 1
	if row < 0 || row >= c.base.rows || !c.rowInClip(row) {
		return
	}
	x0, x1 := c.cols(abs)
	for col := x0; col < x1; col++ {
		cell := c.cur.grid.at(col, row)
		cell.Rule = true
		if cell.Glyph == "" {
			cell.Glyph = " "
			cell.Fg = src
		}
	}
}

// DrawText writes text on the row whose span starts nearest pt.Y. Wide
// runes take two columns; text past the clip is cut.
func (c *TermCanvas) DrawText(pt gfx.Point, text string, paint gfx.Paint) {
	abs := pt.Add(gfx.Point{X: c.cur.dx, Y: c.cur.dy})
	row := floorDiv(abs.Y+c.Scale/2, c.Scale)
	if row < 0 || row >= c.base.rows || !c.rowInClip(row) {
		return
	}
	fg := c.fg
	if paint.Color != nil {
		fg = color.NRGBAModel.Convert(paint.Color).(color.NRGBA)
	}
	x0, x1 := c.cols(gfx.R(c.cur.clip.Min.X, 0, c.cur.clip.Max.X, 0))
	col := abs.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > x1 {
			break
		}
		if col >= x0 {
			cell := c.cur.grid.at(col, row)
			cell.Glyph, cell.Fg, cell.Bold, cell.cont = string(r), fg, paint.Bold, false
			if w == 2 {
				next := c.cur.grid.at(col+1, row)
				next.Glyph, next.Fg, next.cont = "", fg, true
			}
		}
		col += w
	}
}

func (c *TermCanvas) composite(src, dst *grid) {
	for i := range src.cells {
		s, d := &src.cells[i], &dst.cells[i]
		if s.Bg.A > 0 {
			if d.Bg.A == 0 {
				d.Bg = s.Bg
			} else {
				d.Bg = gfx.Over(d.Bg, s.Bg)
			}
		}
		if s.Glyph != "" || s.cont {
			d.Glyph, d.Fg, d.Bold, d.cont = s.Glyph, s.Fg, s.Bold, s.cont
		}
		if s.Rule {
			d.Rule = true
		}
	}
}

func (c *TermCanvas) eachCell(abs gfx.Rect, fn func(*Cell)) {
	x0, x1 := c.cols(abs)
	for row := 0; row < c.base.rows; row++ {
		center := row*c.Scale + c.Scale/2
		if center < abs.Min.Y || center >= abs.Max.Y || !c.rowInClip(row) {
			continue
		}
		for col := x0; col < x1; col++ {
			fn(c.cur.grid.at(col, row))
		}
	}
}

// cols returns the column span of abs inside the clip and the canvas.
func (c *TermCanvas) cols(abs gfx.Rect) (int, int) {
	x0 := max(abs.Min.X, c.cur.clip.Min.X, 0)
	x1 := min(abs.Max.X, c.cur.clip.Max.X, c.base.cols)
	return x0, max(x0, x1)
}

func (c *TermCanvas) rowInClip(row int) bool {
	center := row*c.Scale + c.Scale/2
	return center >= c.cur.clip.Min.Y && center < c.cur.clip.Max.Y
}

// CellAt returns the composited cell, or a zero cell outside the canvas.
func (c *TermCanvas) CellAt(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.base.cols || row >= c.base.rows {
		return Cell{}
	}
	return *c.base.at(col, row)
}

// Line returns the glyphs of row as plain text, blanks for empty cells.
func (c *TermCanvas) Line(row int) string {
	var sb strings.Builder
	for col := 0; col < c.base.cols; col++ {
		cell := c.base.at(col, row)
		switch {
		case cell.cont:
		case cell.Glyph == "":
			sb.WriteByte(' ')
		default:
			sb.WriteString(cell.Glyph)
		}
	}
	return sb.String()
}

// Blit draws the canvas into area, one styled string per row. Runs of
// cells sharing colors and attributes render through one style.
func (c *TermCanvas) Blit(scr uv.Screen, area uv.Rectangle) {
	rows := min(c.base.rows, area.Dy())
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		var run strings.Builder
		var runCell *Cell
		flush := func() {
			if runCell != nil {
				sb.WriteString(cellStyle(runCell).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < min(c.base.cols, area.Dx()); col++ {
			cell := c.base.at(col, row)
			if cell.cont {
				continue
			}
			if runCell == nil || !sameStyle(runCell, cell) {
				flush()
				runCell = cell
			}
			if cell.Glyph == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(cell.Glyph)
			}
		}
		flush()
		line := uv.Rect(area.Min.X, area.Min.Y+row, area.Dx(), 1)
		uv.NewStyledString(sb.String()).Draw(scr, line)
	}
}

func sameStyle(a, b *Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold && a.Rule == b.Rule
}

func cellStyle(cell *Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(cell.Bold).Underline(cell.Rule)
	if cell.Fg.A > 0 {
		s = s.Foreground(opaqueOf(cell.Fg))
	}
	if cell.Bg.A > 0 {
		s = s.Background(opaqueOf(cell.Bg))
	}
	return s
}

func opaqueOf(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
