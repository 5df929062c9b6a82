// Package catalog describes the AppIcon asset catalogue: which icon files
// exist, at which scale, and the Contents.json that lists them.
package catalog

import (
	"encoding/json"
	"fmt"
)

// Sizes are the logical macOS icon sizes, ascending.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

// MaxRetinaSize is the largest logical size that also gets an @2x file.
const MaxRetinaSize = 512

// DefaultDir is where the icon set lives relative to the project root.
const DefaultDir = "Assets.xcassets/AppIcon.appiconset"

// ContentsFile is the catalogue metadata file name.
const ContentsFile = "Contents.json"

// Variant is one icon file: a logical size at a scale factor.
type Variant struct {
	Size  int
	Scale int
}

// Pixels is the rendered edge length.
func (v Variant) Pixels() int {
	return v.Size * v.Scale
}

// Filename follows icon_<W>x<H>.png, with an @2x suffix for retina files.
func (v Variant) Filename() string {
	if v.Scale > 1 {
		return fmt.Sprintf("icon_%dx%d@%dx.png", v.Size, v.Size, v.Scale)
	}
	return fmt.Sprintf("icon_%dx%d.png", v.Size, v.Size)
}

// Plan expands logical sizes into the files to render: every size at 1x,
// and sizes up to MaxRetinaSize again at 2x right after it.
func Plan(sizes []int) []Variant {
	plan := make([]Variant, 0, len(sizes)*2)
	for _, s := range sizes {
		plan = append(plan, Variant{Size: s, Scale: 1})
		if s <= MaxRetinaSize {
			plan = append(plan, Variant{Size: s, Scale: 2})
		}
	}
	return plan
}

// Image is one entry of Contents.json.
type Image struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

// Info is the static metadata block of Contents.json.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Contents is the asset catalogue companion file.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// NewContents lists every variant as a mac idiom image.
func NewContents(plan []Variant) Contents {
	images := make([]Image, 0, len(plan))
	for _, v := range plan {
		images = append(images, Image{
			Size:     fmt.Sprintf("%dx%d", v.Size, v.Size),
			Idiom:    "mac",
			Filename: v.Filename(),
			Scale:    fmt.Sprintf("%dx", v.Scale),
		})
	}
	return Contents{
		Images: images,
		Info:   Info{Version: 1, Author: "xcode"},
	}
}

// Marshal encodes the contents with two-space indentation, the layout
// Xcode itself writes.
func (c Contents) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ContentsFile, err)
	}
	return append(b, '\n'), nil
}

// DefaultContents is the Contents.json for the standard size list.
func DefaultContents() ([]byte, error) {
	return NewContents(Plan(Sizes)).Marshal()
}
