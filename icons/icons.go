// Package icons is a fixed catalog of named glyphs for trailkit widgets.
//
// Widgets refer to icons by Name and never embed raw glyphs themselves, so
// a front-end can substitute its own catalog (e.g. nerd-font glyphs) without
// touching widget code.
package icons

// Name identifies an icon in the catalog.
type Name string

const (
	Star         Name = "star"
	StarOff      Name = "star-off"
	StarHalf     Name = "star-half"
	Heart        Name = "heart"
	HeartOff     Name = "heart-off"
	HeartHalf    Name = "heart-half"
	ThumbsUp     Name = "thumbs-up"
	ThumbsDown   Name = "thumbs-down"
	ChevronRight Name = "chevron-right"
	Folder       Name = "folder"
	House        Name = "house"
	File         Name = "file"
	Dot          Name = "dot"
	Ellipsis     Name = "ellipsis"
)

// glyphs maps icon names to single-cell-ish terminal glyphs.
var glyphs = map[Name]string{
	Star:         "★",
	StarOff:      "☆",
	StarHalf:     "⯪",
	Heart:        "♥",
	HeartOff:     "♡",
	HeartHalf:    "♥",
	ThumbsUp:     "👍",
	ThumbsDown:   "👎",
	ChevronRight: "›",
	Folder:       "📁",
	House:        "⌂",
	File:         "≡",
	Dot:          "•",
	Ellipsis:     "…",
}

// Glyph returns the terminal glyph for name. Unknown names degrade to a
// neutral placeholder rather than failing.
func Glyph(name Name) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "◦"
}

// Known reports whether name is in the catalog.
func Known(name Name) bool {
	_, ok := glyphs[name]
	return ok
}

// HalfVariant returns the half-filled counterpart of a filled icon, if the
// catalog has one. Icons without a dedicated half glyph reuse the filled
// glyph; the renderer dims it instead.
func HalfVariant(name Name) Name {
	switch name {
	case Star:
		return StarHalf
	case Heart:
		return HeartHalf
	default:
		return name
	}
}
