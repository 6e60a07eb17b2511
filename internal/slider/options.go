package slider

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidMoveValue = errors.New("move value must be positive")
	ErrInvalidGap       = errors.New("gap must not be negative")
	ErrInvalidOption    = errors.New("invalid option")
)

// Orientation selects the active scroll axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// MoveBy selects the unit of one navigation step.
type MoveBy int

const (
	MovePixel MoveBy = iota
	MoveItem
)

// Alignment selects how item movement positions the viewport.
// Center is only meaningful together with MoveItem.
type Alignment int

const (
	AlignEdge Alignment = iota
	AlignCenter
)

// Options configures a slider. The zero value moves by 0 pixels horizontally
// and does not pass Validate.
type Options struct {
	MoveBy MoveBy
	// MoveValue is pixels per step, or items per step in item mode. Centered
	// sliders round it to whole items, so it must round to at least one.
	MoveValue   float64
	Gap         float64
	Orientation Orientation
	Alignment   Alignment
	// Responsive makes the viewport fill its parent instead of sizing to content.
	Responsive bool
}

// Validate reports configuration the reducer would silently clamp.
func (o Options) Validate() error {
	if o.MoveValue <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMoveValue, o.MoveValue)
	}
	if o.Centered() && math.Round(o.MoveValue) < 1 {
		return fmt.Errorf("%w: %v rounds to zero items", ErrInvalidMoveValue, o.MoveValue)
	}
	if o.Gap < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidGap, o.Gap)
	}
	if o.MoveBy != MovePixel && o.MoveBy != MoveItem {
		return fmt.Errorf("%w: move by %d", ErrInvalidOption, int(o.MoveBy))
	}
	if o.Orientation != Horizontal && o.Orientation != Vertical {
		return fmt.Errorf("%w: orientation %d", ErrInvalidOption, int(o.Orientation))
	}
	if o.Alignment != AlignEdge && o.Alignment != AlignCenter {
		return fmt.Errorf("%w: alignment %d", ErrInvalidOption, int(o.Alignment))
	}
	return nil
}

// Centered reports whether navigation tracks an active item.
func (o Options) Centered() bool {
	return o.MoveBy == MoveItem && o.Alignment == AlignCenter
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

func (o Orientation) MarshalText() ([]byte, error) {
	if o != Horizontal && o != Vertical {
		return nil, fmt.Errorf("%w: orientation %d", ErrInvalidOption, int(o))
	}
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "horizontal":
		*o = Horizontal
	case "vertical":
		*o = Vertical
	default:
		return fmt.Errorf("%w: orientation %q", ErrInvalidOption, b)
	}
	return nil
}

func (m MoveBy) String() string {
	switch m {
	case MovePixel:
		return "pixel"
	case MoveItem:
		return "item"
	}
	return fmt.Sprintf("MoveBy(%d)", int(m))
}

func (m MoveBy) MarshalText() ([]byte, error) {
	if m != MovePixel && m != MoveItem {
		return nil, fmt.Errorf("%w: move by %d", ErrInvalidOption, int(m))
	}
	return []byte(m.String()), nil
}

func (m *MoveBy) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "pixel":
		*m = MovePixel
	case "item":
		*m = MoveItem
	default:
		return fmt.Errorf("%w: move by %q", ErrInvalidOption, b)
	}
	return nil
}

func (a Alignment) String() string {
	switch a {
	case AlignEdge:
		return "edge"
	case AlignCenter:
		return "center"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

func (a Alignment) MarshalText() ([]byte, error) {
	if a != AlignEdge && a != AlignCenter {
		return nil, fmt.Errorf("%w: alignment %d", ErrInvalidOption, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Alignment) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "edge":
		*a = AlignEdge
	case "center":
		*a = AlignCenter
	default:
		return fmt.Errorf("%w: alignment %q", ErrInvalidOption, b)
	}
	return nil
}
