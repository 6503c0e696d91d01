// Package preview rasterises segments into small PNG thumbnails.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"github.com/philipparndt/ringseg/pkg/sheet"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// Options controls thumbnail rendering
type Options struct {
	Size        int     // Edge length of the square thumbnail in pixels
	Supersample int     // Rendering scale before downsampling
	StrokeWidth float64 // Outline width in output pixels
	Outline     geometry.OutlineOptions
	Palette     sheet.Palette
}

// DefaultOptions returns 256 px thumbnails in the sheet colours
func DefaultOptions() Options {
	return Options{
		Size:        256,
		Supersample: 4,
		StrokeWidth: 1.5,
		Outline:     geometry.DefaultOutlineOptions(),
		Palette:     sheet.DefaultPalette(),
	}
}

// Render draws seg centred on a white square, oriented the same way as on
// the sheet with the outer arc at the top
func Render(seg geometry.Segment, opts Options) (*image.NRGBA, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %d", opts.Size)
	}
	ss := max(opts.Supersample, 1)
	canvas := opts.Size * ss
	side := float64(canvas)

	img := image.NewNRGBA(image.Rect(0, 0, canvas, canvas))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	p := layout.Normalize(seg, vec.Vec2{X: side, Y: side}, vec.Vec2{X: side / 2, Y: side / 2})
	outline := p.ApplyAll(geometry.BuildOutline(seg, opts.Outline))
	// Image rows grow downwards
	for i := range outline {
		outline[i].Y = side - outline[i].Y
	}

	r := vector.NewRasterizer(canvas, canvas)
	fillPolygon(r, outline)
	r.Draw(img, img.Bounds(), image.NewUniform(opts.Palette.Fill), image.Point{})

	width := opts.StrokeWidth * float64(ss)
	stroke := image.NewUniform(opts.Palette.Outline)
	for i := 1; i < len(outline); i++ {
		if !strokeSegment(r, outline[i-1], outline[i], width) {
			continue
		}
		r.Draw(img, img.Bounds(), stroke, image.Point{})
	}

	if ss == 1 {
		return img, nil
	}
	return imaging.Resize(img, opts.Size, opts.Size, imaging.Lanczos), nil
}

func fillPolygon(r *vector.Rasterizer, points []vec.Vec2) {
	r.Reset(r.Size().X, r.Size().Y)
	for i, pt := range points {
		if i == 0 {
			r.MoveTo(float32(pt.X), float32(pt.Y))
			continue
		}
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()
}

// strokeSegment loads the rasteriser with a quad of the given width around
// the line from a to b. It reports false for degenerate segments.
func strokeSegment(r *vector.Rasterizer, a, b vec.Vec2, width float64) bool {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 || math.IsNaN(length) {
		return false
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2 / length)
	fillPolygon(r, []vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	return true
}

// Encode writes img as PNG
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// FileName returns the thumbnail file name of a unit
func FileName(u geometry.Unit) string {
	return u.ID + ".png"
}

// Thumbnails renders every unit into a PNG keyed by FileName. A later
// duplicate id replaces the earlier one.
func Thumbnails(units []geometry.Unit, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(units))
	for i, u := range units {
		img, err := Render(u.Segment, opts)
		if err != nil {
			return nil, fmt.Errorf("unit %d (%s): %w", i+1, u.ID, err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("unit %d (%s): %w", i+1, u.ID, err)
		}
		out[FileName(u)] = buf.Bytes()
	}
	return out, nil
}
