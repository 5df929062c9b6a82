package icon

import (
	"errors"
	"image/color"
)

// ErrInvalidSize is returned for non-positive icon sizes.
var ErrInvalidSize = errors.New("icon size must be positive")

// LargeThreshold is the smallest size drawn with the node-triangle layout.
const LargeThreshold = 64

// Layout selects the composition used for a size.
type Layout int

const (
	LayoutSmall Layout = iota
	LayoutLarge
)

func (l Layout) String() string {
	if l == LayoutLarge {
		return "large"
	}
	return "small"
}

// Palette is the fixed four-colour scheme.
type Palette struct {
	Background color.NRGBA
	Primary    color.NRGBA
	Secondary  color.NRGBA
	Accent     color.NRGBA
}

// DefaultPalette: dark slate, blue, amber, emerald.
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF},
	Primary:    color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
	Secondary:  color.NRGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	Accent:     color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
}

// glowAlpha is the opacity of the edge glow.
const glowAlpha = 0x40

// Glow is the translucent secondary colour used for the edge outline.
func (p Palette) Glow() color.NRGBA {
	g := p.Secondary
	g.A = glowAlpha
	return g
}

// Spec is everything a render depends on.
type Spec struct {
	Size    int
	Palette Palette
	Layout  Layout
}

// NewSpec builds the spec for a pixel size with the default palette.
func NewSpec(size int) Spec {
	layout := LayoutSmall
	if size >= LargeThreshold {
		layout = LayoutLarge
	}
	return Spec{Size: size, Palette: DefaultPalette, Layout: layout}
}
