// Package icon draws the application icon.
//
// The design is a dark disc with a blue outline. At 64px and above it holds
// three coloured nodes joined into a triangle around a small hub; below
// 64px, where that detail would turn to mush, it becomes a ring around a
// filled core with a hole. A faint amber glow traces the canvas edge at
// every size.
//
// Compose returns the design as a list of shapes, Draw rasterises it, and
// Encode/RenderFile produce PNGs. Generator renders the whole AppIcon set.
package icon
