package wheel

import "github.com/mark3labs/wheelr/internal/gfx"

// MeasureMode is the constraint kind of a MeasureSpec.
type MeasureMode int

const (
	// Unspecified places no limit on the size.
	Unspecified MeasureMode = iota
	// AtMost caps the size.
	AtMost
	// Exactly forces the size.
	Exactly
)

func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case AtMost:
		return "at-most"
	case Exactly:
		return "exactly"
	default:
		return "unknown"
	}
}

// MeasureSpec is a size constraint passed down during measurement.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactlySpec returns an Exactly constraint of size.
func ExactlySpec(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec returns an AtMost constraint of size.
func AtMostSpec(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSpec returns an unconstrained spec.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Resolve picks a final size for desired under the constraint.
func (s MeasureSpec) Resolve(desired int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return min(desired, s.Size)
	default:
		return desired
	}
}

// View is one materialized wheel row.
type View interface {
	Measure(width, height MeasureSpec)
	MeasuredWidth() int
	MeasuredHeight() int
	// Draw paints the row with its top-left corner at the canvas origin.
	Draw(c gfx.Canvas)
}

// Insets is padding around the wheel's draw area.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Horizontal returns Left+Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top+Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Host is what an Engine needs from the surface that embeds it. All calls
// happen on the host's dispatch goroutine.
type Host interface {
	// Invalidate schedules a redraw.
	Invalidate()
	// RequestLayout schedules a re-measure.
	RequestLayout()
	Padding() Insets
	// Size is the laid-out size of the wheel, padding included.
	Size() (width, height int)
	// RequestFrame asks the host to call Engine.Tick soon.
	RequestFrame()
}
