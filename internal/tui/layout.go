package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// TitleHeight is the height of the title row
	TitleHeight = 1
	// StatusHeight is the height of the status bar in rows
	StatusHeight = 1
	// FooterHeight is the height of the footer in rows
	FooterHeight = 1
	// ColumnGap is the space between wheel columns
	ColumnGap = 2
	// MaxColumnWidth caps a column so short labels stay near the middle
	MaxColumnWidth = 32
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Area    uv.Rectangle
	Title   uv.Rectangle
	Content uv.Rectangle
	Columns []uv.Rectangle
	Status  uv.Rectangle
	Footer  uv.Rectangle
}

// CalculateLayout computes the layout rectangles based on terminal
// dimensions and the number of wheel columns. Columns share the content
// width equally and are centered as a group.
func CalculateLayout(width, height, columns int) Layout {
	area := uv.Rectangle{
		Max: uv.Position{X: max(width, 0), Y: max(height, 0)},
	}

	// Split vertically: title | content | status | footer
	titleRect, rest := uv.SplitVertical(area, uv.Fixed(min(TitleHeight, area.Dy())))
	contentRect, rest2 := uv.SplitVertical(rest, uv.Fixed(max(rest.Dy()-StatusHeight-FooterHeight, 0)))
	statusRect, footerRect := uv.SplitVertical(rest2, uv.Fixed(min(StatusHeight, rest2.Dy())))

	l := Layout{
		Area:    area,
		Title:   titleRect,
		Content: contentRect,
		Status:  statusRect,
		Footer:  footerRect,
	}
	if columns <= 0 {
		return l
	}

	colWidth := (contentRect.Dx() - ColumnGap*(columns-1)) / columns
	colWidth = max(min(colWidth, MaxColumnWidth), 1)
	total := colWidth*columns + ColumnGap*(columns-1)
	x := contentRect.Min.X + max(contentRect.Dx()-total, 0)/2

	// Split horizontally, one fixed slice per column
	row := uv.Rect(x, contentRect.Min.Y, contentRect.Max.X-x, contentRect.Dy())
	for i := range columns {
		var col uv.Rectangle
		col, row = uv.SplitHorizontal(row, uv.Fixed(min(colWidth, row.Dx())))
		l.Columns = append(l.Columns, col)
		if i < columns-1 {
			_, row = uv.SplitHorizontal(row, uv.Fixed(min(ColumnGap, row.Dx())))
		}
	}
	return l
}
