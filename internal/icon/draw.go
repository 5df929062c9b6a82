package icon

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Draw rasterises the composition for spec onto a transparent canvas.
func Draw(spec Spec) (image.Image, error) {
	dc, err := canvas(spec)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func canvas(spec Spec) (*gg.Context, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, spec.Size)
	}

	dc := gg.NewContext(spec.Size, spec.Size)
	dc.SetLineCap(gg.LineCapRound)
	for _, s := range Compose(spec) {
		paint(dc, s)
	}
	return dc, nil
}

func paint(dc *gg.Context, s Shape) {
	if s.Kind == KindLine {
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(s.Width)
		dc.DrawLine(s.Center.X, s.Center.Y, s.To.X, s.To.Y)
		dc.Stroke()
		return
	}

	if s.Fill.A > 0 {
		dc.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
		dc.SetColor(s.Fill)
		dc.Fill()
	}
	if s.Stroked() {
		// Outlines stay inside the circle's bounds.
		r := max(s.Radius-s.Width/2, s.Width/2)
		dc.DrawCircle(s.Center.X, s.Center.Y, r)
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(s.Width)
		dc.Stroke()
	}
}

// Encode renders a size x size icon and returns it as PNG bytes.
func Encode(size int) ([]byte, error) {
	return EncodeSpec(NewSpec(size))
}

// EncodeSpec renders spec as PNG bytes.
func EncodeSpec(spec Spec) ([]byte, error) {
	dc, err := canvas(spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding %dx%d png: %w", spec.Size, spec.Size, err)
	}
	return buf.Bytes(), nil
}

// RenderFile writes a size x size PNG to path, creating parent directories.
func RenderFile(size int, path string) error {
	data, err := Encode(size)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
