// Package wheellayout composes wheel engines into integer, float and date
// pickers: one or more columns whose ranges follow each other.
package wheellayout

import (
	"slices"
	"strconv"

	"github.com/mark3labs/wheelr/internal/wheel"
	"github.com/mattn/go-runewidth"
)

// Formatter renders the value at index for display.
type Formatter interface {
	Format(index, value int) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(index, value int) string

func (f FormatterFunc) Format(index, value int) string { return f(index, value) }

// ViewFactory builds a row showing text, rebinding recycled when it is
// non-nil. An empty text is a filler row.
type ViewFactory func(text string, recycled wheel.View) wheel.View

// IntAdapter serves the integers Min..Max inclusive.
type IntAdapter struct {
	wheel.BaseAdapter
	Min, Max  int
	formatter Formatter
	views     ViewFactory
}

// NewIntAdapter creates an adapter for min..max. formatter may be nil.
func NewIntAdapter(min, max int, formatter Formatter, views ViewFactory) *IntAdapter {
	return &IntAdapter{Min: min, Max: max, formatter: formatter, views: views}
}

func (a *IntAdapter) ItemCount() int { return a.Max - a.Min + 1 }

func (a *IntAdapter) ItemView(index int, recycled wheel.View) wheel.View {
	if index < 0 || index >= a.ItemCount() {
		return nil
	}
	return a.views(a.Text(index), recycled)
}

func (a *IntAdapter) EmptyView(recycled wheel.View) wheel.View {
	return a.views("", recycled)
}

// Text returns the label for index.
func (a *IntAdapter) Text(index int) string {
	return a.text(index, a.Min+index)
}

func (a *IntAdapter) text(index, value int) string {
	if a.formatter != nil {
		return a.formatter.Format(index, value)
	}
	return strconv.Itoa(value)
}

// LongestText returns the label assumed to be the widest, the formatted
// maximum, for sizing placeholders.
func (a *IntAdapter) LongestText() string {
	return a.text(0, a.Max)
}

// StringAdapter serves a fixed list of labels.
type StringAdapter struct {
	wheel.BaseAdapter
	items []string
	views ViewFactory
}

// NewStringAdapter creates an adapter over items. The slice is copied.
func NewStringAdapter(items []string, views ViewFactory) *StringAdapter {
	return &StringAdapter{items: slices.Clone(items), views: views}
}

func (a *StringAdapter) ItemCount() int { return len(a.items) }

func (a *StringAdapter) ItemView(index int, recycled wheel.View) wheel.View {
	if index < 0 || index >= len(a.items) {
		return nil
	}
	return a.views(a.items[index], recycled)
}

func (a *StringAdapter) EmptyView(recycled wheel.View) wheel.View {
	return a.views("", recycled)
}

// Text returns the label at index.
func (a *StringAdapter) Text(index int) string { return a.items[index] }

// Index returns the position of the first label equal to s, or -1.
func (a *StringAdapter) Index(s string) int { return slices.Index(a.items, s) }

// LongestText returns the widest label in terminal cells.
func (a *StringAdapter) LongestText() string {
	longest := ""
	for _, s := range a.items {
		if runewidth.StringWidth(s) > runewidth.StringWidth(longest) {
			longest = s
		}
	}
	return longest
}
