// Package trail implements an adaptive breadcrumb widget.
//
// The widget is a pure function of caller-supplied state: the caller owns
// the authoritative path, builds a Config from it on every render, and the
// widget emits a styled node sequence plus activation dispatch. State
// changes flow back through per-item OnActivate callbacks; the widget never
// mutates the path itself.
package trail

import "trailkit/icons"

// Item is one segment of the breadcrumb, root to leaf. Identity is
// positional within the current display sequence, not a stable key.
type Item struct {
	Label      string
	Icon       icons.Name      // optional; empty means no icon
	OnActivate func(index int) // absent on the terminal item
	Disabled   bool
}

type separatorKind int

const (
	sepChevron separatorKind = iota // default
	sepSlash
	sepDot
	sepIcon
)

// Separator selects the glyph drawn between breadcrumb items. It is a
// closed set of mutually exclusive modes; the icon mode carries its icon
// reference.
type Separator struct {
	kind separatorKind
	icon icons.Name
}

// SeparatorSlash draws "/" between items.
func SeparatorSlash() Separator { return Separator{kind: sepSlash} }

// SeparatorChevron draws a right chevron between items. This is the default.
func SeparatorChevron() Separator { return Separator{kind: sepChevron} }

// SeparatorDot draws "•" between items.
func SeparatorDot() Separator { return Separator{kind: sepDot} }

// SeparatorIcon draws a custom catalog icon between items.
func SeparatorIcon(icon icons.Name) Separator {
	return Separator{kind: sepIcon, icon: icon}
}

// Glyph returns the separator's terminal glyph.
func (s Separator) Glyph() string {
	switch s.kind {
	case sepSlash:
		return "/"
	case sepDot:
		return "•"
	case sepIcon:
		return icons.Glyph(s.icon)
	}
	return icons.Glyph(icons.ChevronRight)
}

// SizeClass selects the breadcrumb's density.
type SizeClass int

const (
	SizeXSmall SizeClass = iota
	SizeSmall
	SizeMedium // default
	SizeLarge
	SizeCustom
)

// Size is a size class, optionally carrying a custom cell gap.
type Size struct {
	Class SizeClass
	Cells int // gap width for SizeCustom
}

// Gap returns the cell gap between nodes for this size.
func (s Size) Gap() int {
	switch s.Class {
	case SizeXSmall:
		return 0
	case SizeSmall, SizeMedium:
		return 1
	case SizeLarge:
		return 2
	case SizeCustom:
		if s.Cells < 0 {
			return 0
		}
		return s.Cells
	}
	return 1
}

// Config is the full per-render description of a breadcrumb. It is built
// fresh from caller state on every render and dropped afterwards.
type Config struct {
	Items      []Item
	Separator  Separator
	MaxVisible int  // 0 means unlimited
	Size       Size // zero value is SizeXSmall; use DefaultSize for medium
	Disabled   bool // trail-wide override
}

// DefaultSize is the medium density most front-ends want.
func DefaultSize() Size { return Size{Class: SizeMedium} }
