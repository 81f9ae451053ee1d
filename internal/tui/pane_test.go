package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/mark3labs/wheelr/internal/tui/testfixtures"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		VisibleItems:  5,
		RowScale:      4,
		Interpolator:  scroller.Linear,
		DrawShadows:   true,
		DrawHighlight: true,
		DrawDivider:   true,
	}
}

// newListPane places a 20×8 pane at the origin: header on row 0, wheel on
// rows 2..6 with the central row at 4.
func newListPane(t *testing.T, title string, items []string) (*Pane, *wheellayout.StringAdapter) {
	t.Helper()
	p := NewPane(title, testOptions())
	a := wheellayout.NewStringAdapter(items, p.Views())
	p.Engine().SetAdapter(a)
	p.SetArea(uv.Rect(0, 0, 20, 8))
	require.Equal(t, uv.Rect(0, 2, 20, 5), p.WheelArea())
	t.Cleanup(p.Close)
	return p, a
}

// settle answers frame requests until every animation has finished.
func settle(t *testing.T, panes ...*Pane) {
	t.Helper()
	now := time.Now()
	for range 50 {
		ticked := false
		for _, p := range panes {
			if p.takeFrame() {
				now = now.Add(time.Second)
				p.Engine().Tick(now)
				ticked = true
			}
		}
		if !ticked {
			return
		}
	}
	t.Fatal("animation did not settle")
}

func press(p *Pane, msgs ...tea.KeyPressMsg) {
	for _, m := range msgs {
		p.Update(m)
	}
}

func TestPaneKeysScroll(t *testing.T) {
	p, _ := newListPane(t, "fruit", testfixtures.Fruits())
	e := p.Engine()

	tests := []struct {
		name string
		key  tea.KeyPressMsg
		want int
	}{
		{"down", testfixtures.Key(tea.KeyDown), 1},
		{"j", testfixtures.Key('j'), 2},
		{"up", testfixtures.Key(tea.KeyUp), 1},
		{"k", testfixtures.Key('k'), 0},
		{"pgdown", testfixtures.Key(tea.KeyPgDown), 5},
		{"pgup", testfixtures.Key(tea.KeyPgUp), 0},
		{"end", testfixtures.Key(tea.KeyEnd), 6},
		{"home", testfixtures.Key(tea.KeyHome), 0},
	}
	for _, tt := range tests {
		require.True(t, p.Update(tt.key), tt.name)
		settle(t, p)
		assert.Equal(t, tt.want, e.CurrentItem(), tt.name)
		assert.False(t, e.IsScrolling(), tt.name)
	}

	assert.False(t, p.Update(testfixtures.Key(tea.KeyEnter)), "enter is left to the app")
}

func TestPaneTypeToJump(t *testing.T) {
	p, _ := newListPane(t, "fruit", testfixtures.Fruits())

	press(p, testfixtures.Type("gr")...)
	settle(t, p)
	q, searching := p.Query()
	assert.True(t, searching)
	assert.Equal(t, "gr", q)
	assert.Equal(t, 6, p.Engine().CurrentItem())

	// j and k are query text while searching
	press(p, testfixtures.Key(tea.KeyBackspace), testfixtures.Key(tea.KeyBackspace))
	press(p, testfixtures.Type("ch")...)
	settle(t, p)
	q, _ = p.Query()
	assert.Equal(t, "ch", q)
	assert.Equal(t, 2, p.Engine().CurrentItem())

	require.True(t, p.Update(testfixtures.Key(tea.KeyEscape)))
	_, searching = p.Query()
	assert.False(t, searching)
	assert.Equal(t, 2, p.Engine().CurrentItem())
	assert.False(t, p.Update(testfixtures.Key(tea.KeyEscape)), "esc outside a search is left to the app")

	require.True(t, p.Update(testfixtures.Key('/')))
	press(p, testfixtures.Type("j")...)
	q, searching = p.Query()
	assert.True(t, searching)
	assert.Equal(t, "j", q)

	p.SetFocused(false)
	_, searching = p.Query()
	assert.False(t, searching, "losing focus ends the search")
}

type labels []string

func (l labels) ItemCount() int        { return len(l) }
func (l labels) Text(index int) string { return l[index] }

func TestBestMatch(t *testing.T) {
	fruit := labels{"apple", "grape", "pineapple"}
	twins := labels{"ab", "zz", "zz", "ab", "zz", "zz"}

	tests := []struct {
		name    string
		query   string
		labels  labels
		current int
		cyclic  bool
		want    int
	}{
		{"exact beats longer", "apple", fruit, 2, false, 0},
		{"tie goes to the nearest", "ap", fruit, 1, false, 1},
		{"tie from the start", "ap", fruit, 0, false, 0},
		{"case folded", "GRA", fruit, 0, false, 1},
		{"no match", "kiwi", fruit, 0, false, -1},
		{"linear distance", "ab", twins, 5, false, 3},
		{"distance wraps when cyclic", "ab", twins, 5, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestMatch(tt.query, tt.labels, tt.current, tt.cyclic))
		})
	}
}

func TestPaneTapSnapsToRow(t *testing.T) {
	p, _ := newListPane(t, "fruit", testfixtures.Fruits())
	e := p.Engine()
	e.SetCurrentItem(3, false)

	// tapping the central row is not a click
	p.Pointer(scroller.Down, 4)
	p.Pointer(scroller.Up, 4)
	settle(t, p)
	assert.Equal(t, 3, e.CurrentItem())

	p.Pointer(scroller.Down, 6)
	p.Pointer(scroller.Up, 6)
	settle(t, p)
	assert.Equal(t, 5, e.CurrentItem())

	p.Pointer(scroller.Down, 3)
	p.Pointer(scroller.Up, 3)
	settle(t, p)
	assert.Equal(t, 4, e.CurrentItem())
}

func TestPaneDrag(t *testing.T) {
	p, _ := newListPane(t, "fruit", testfixtures.Fruits())
	e := p.Engine()

	p.Pointer(scroller.Down, 6)
	p.Pointer(scroller.Move, 4)
	assert.True(t, e.IsScrolling())
	assert.Equal(t, 2, e.CurrentItem(), "dragging up two rows advances two items")

	p.Pointer(scroller.Up, 4)
	settle(t, p)
	assert.False(t, e.IsScrolling())
	assert.GreaterOrEqual(t, e.CurrentItem(), 2)
	assert.Equal(t, 0, e.ScrollingOffset())
}

func TestPaneDraw(t *testing.T) {
	p, _ := newListPane(t, "fruit", testfixtures.Fruits())
	p.SetDescription(func() (string, string) { return "kg", "banana" })

	lines := testfixtures.Lines(testfixtures.Render(func(scr uv.Screen, _ uv.Rectangle) {
		p.Draw(scr)
	}))
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "fruit ──────────────", lines[0])
	assert.Equal(t, "", lines[2], "no rows above the first item")
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "       apple  kg", lines[4])
	assert.Equal(t, "       banana", lines[5])
	assert.Equal(t, "       cherry", lines[6])
}

func TestPaneCloseDetaches(t *testing.T) {
	p := NewPane("fruit", testOptions())
	a := wheellayout.NewStringAdapter(testfixtures.Fruits(), p.Views())
	p.Engine().SetAdapter(a)
	require.Equal(t, 1, a.Observers())
	p.Close()
	assert.Equal(t, 0, a.Observers())
}
