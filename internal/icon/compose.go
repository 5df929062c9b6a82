package icon

import (
	"image/color"
	"math"
)

// Kind is the drawing primitive of a shape.
type Kind int

const (
	KindDisc Kind = iota // filled circle, optionally outlined
	KindRing             // outlined circle, no fill
	KindLine
)

// Part is the role a shape plays in the design.
type Part int

const (
	PartBackground Part = iota
	PartNode
	PartEdge
	PartHub
	PartRing
	PartCore
	PartHole
	PartGlow
)

// Point is a position in device units.
type Point struct {
	X, Y float64
}

// Shape is one primitive of a composition. Circles use Center and Radius;
// lines run from Center to To. Width is the stroke width and is zero for
// shapes that are only filled. A zero-alpha Fill means no fill.
type Shape struct {
	Kind   Kind
	Part   Part
	Center Point
	To     Point
	Radius float64
	Width  float64
	Fill   color.NRGBA
	Stroke color.NRGBA
}

// Stroked reports whether the shape draws an outline or a line.
func (s Shape) Stroked() bool {
	return s.Width > 0
}

// Compose lays out the design for spec, in paint order. It returns nil for
// non-positive sizes.
func Compose(spec Spec) []Shape {
	size := spec.Size
	if size <= 0 {
		return nil
	}
	p := spec.Palette

	// Box-derived shapes are centred on the exact middle; the motif uses
	// the integer centre pixel.
	mid := Point{float64(size) / 2, float64(size) / 2}
	center := Point{float64(size / 2), float64(size / 2)}
	margin := max(2, size/20)

	shapes := []Shape{{
		Kind:   KindDisc,
		Part:   PartBackground,
		Center: mid,
		Radius: math.Max(1, float64(size-2*margin)/2),
		Width:  unit(size / 64),
		Fill:   p.Background,
		Stroke: p.Primary,
	}}

	if spec.Layout == LayoutLarge {
		shapes = append(shapes, composeTriangle(size, center, p)...)
	} else {
		shapes = append(shapes, composeRings(size, center, p)...)
	}

	return append(shapes, Shape{
		Kind:   KindRing,
		Part:   PartGlow,
		Center: mid,
		Radius: math.Max(1, float64(size-2)/2),
		Width:  unit(size / 128),
		Stroke: p.Glow(),
	})
}

// composeTriangle places three nodes 120° apart starting at the top and
// joins them into a closed triangle around a hub dot.
func composeTriangle(size int, center Point, p Palette) []Shape {
	nodes := trianglePoints(center, unit(size/5))
	colors := [3]color.NRGBA{p.Secondary, p.Accent, p.Primary}
	nodeRadius := unit(size / 16)
	edgeWidth := unit(size / 128)

	edge := func(from, to Point) Shape {
		return Shape{Kind: KindLine, Part: PartEdge, Center: from, To: to, Width: edgeWidth, Stroke: p.Primary}
	}

	var shapes []Shape
	for i, n := range nodes {
		shapes = append(shapes, Shape{Kind: KindDisc, Part: PartNode, Center: n, Radius: nodeRadius, Fill: colors[i]})
		if i < len(nodes)-1 {
			shapes = append(shapes, edge(n, nodes[i+1]))
		}
	}
	shapes = append(shapes, edge(nodes[len(nodes)-1], nodes[0]))

	return append(shapes, Shape{Kind: KindDisc, Part: PartHub, Center: center, Radius: unit(size / 20), Fill: p.Secondary})
}

// composeRings is the small-size variant: ring, filled core, hole.
func composeRings(size int, center Point, p Palette) []Shape {
	return []Shape{
		{Kind: KindRing, Part: PartRing, Center: center, Radius: unit(size / 3), Width: unit(size / 32), Stroke: p.Secondary},
		{Kind: KindDisc, Part: PartCore, Center: center, Radius: unit(size / 6), Fill: p.Accent},
		{Kind: KindDisc, Part: PartHole, Center: center, Radius: unit(size / 16), Fill: p.Background},
	}
}

func trianglePoints(center Point, radius float64) [3]Point {
	var pts [3]Point
	for i := range pts {
		angle := float64(i)*2*math.Pi/3 - math.Pi/2
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

// unit clamps a proportional dimension to at least one device unit.
func unit(n int) float64 {
	return float64(max(1, n))
}
