// Package rating implements a graduated rating widget.
//
// Like the breadcrumb, the widget is render-driven: the caller owns the
// authoritative value, builds a Model from it each render, and value
// changes flow back through the OnChange callback. Click input is always
// integer-granular; the Precision flag only changes how fractional values
// supplied by the caller are displayed.
package rating

import "trailkit/icons"

type variantKind int

const (
	variantStar variantKind = iota
	variantHeart
	variantThumb
	variantCustom
)

// Variant selects the icon family and semantic color of the rating. It is
// a closed set of modes; the custom mode carries its icon reference.
type Variant struct {
	kind variantKind
	icon icons.Name
}

// Star uses star icons and the warning color. This is the default.
func Star() Variant { return Variant{kind: variantStar} }

// Heart uses heart icons and the danger color.
func Heart() Variant { return Variant{kind: variantHeart} }

// Thumb uses thumbs-up/thumbs-down icons and the success color.
func Thumb() Variant { return Variant{kind: variantThumb} }

// Custom uses one icon for both filled and empty positions and the primary
// color. There is no dedicated "off" glyph; empty positions rely on color.
func Custom(icon icons.Name) Variant {
	return Variant{kind: variantCustom, icon: icon}
}

// Icon returns the catalog icon for a filled or empty position.
func (v Variant) Icon(filled bool) icons.Name {
	switch v.kind {
	case variantStar:
		if filled {
			return icons.Star
		}
		return icons.StarOff
	case variantHeart:
		if filled {
			return icons.Heart
		}
		return icons.HeartOff
	case variantThumb:
		if filled {
			return icons.ThumbsUp
		}
		return icons.ThumbsDown
	case variantCustom:
		return v.icon
	}
	return icons.Star
}

// SizeClass selects the rating's density.
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

// Gap returns the cell gap between positions for this size.
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

// DefaultSize is the medium density most front-ends want.
func DefaultSize() Size { return Size{Class: SizeMedium} }
