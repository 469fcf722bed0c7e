package rasterizer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/izapata/iconsmith/internal/core/domain"
)

// Rasterizer renders SVG sources with oksvg/rasterx and scales bitmap
// sources with a Catmull-Rom filter. The source kind is sniffed from content.
type Rasterizer struct {
	errMode oksvg.ErrorMode
}

// New creates a rasterizer that ignores SVG elements oksvg does not support
func New() *Rasterizer {
	return &Rasterizer{errMode: oksvg.IgnoreErrorMode}
}

// NewStrict creates a rasterizer that fails on unsupported SVG elements
func NewStrict() *Rasterizer {
	return &Rasterizer{errMode: oksvg.StrictErrorMode}
}

// Inspect reports the kind and intrinsic size of src
func (r *Rasterizer) Inspect(src []byte) (*domain.SourceInfo, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("source is empty")
	}

	if cfg, format, err := image.DecodeConfig(bytes.NewReader(src)); err == nil {
		return &domain.SourceInfo{
			Kind:   domain.SourceBitmap,
			Format: format,
			Width:  float64(cfg.Width),
			Height: float64(cfg.Height),
			Bytes:  len(src),
		}, nil
	}

	icon, err := r.readIcon(src)
	if err != nil {
		return nil, err
	}
	return &domain.SourceInfo{
		Kind:   domain.SourceSVG,
		Format: "svg",
		Width:  icon.ViewBox.W,
		Height: icon.ViewBox.H,
		Bytes:  len(src),
	}, nil
}

// Rasterize renders src into a size x size RGBA image. Non-square sources
// are scaled to cover the square and centred, cropping the overflow.
func (r *Rasterizer) Rasterize(src []byte, size int) (image.Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid target size %d", size)
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("source is empty")
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(src)); err == nil {
		return r.scaleBitmap(src, size)
	}
	return r.renderSVG(src, size)
}

func (r *Rasterizer) readIcon(src []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(src), r.errMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("svg has no usable viewBox or width/height")
	}
	return icon, nil
}

func (r *Rasterizer) renderSVG(src []byte, size int) (image.Image, error) {
	icon, err := r.readIcon(src)
	if err != nil {
		return nil, err
	}

	// The viewBox origin is removed in user units, before scaling
	vb := icon.ViewBox
	side := float64(size)
	s := coverScale(vb.W, vb.H, side)
	ox, oy := (side-vb.W*s)/2, (side-vb.H*s)/2
	icon.Transform = rasterx.Identity.Translate(ox, oy).Scale(s, s).Translate(-vb.X, -vb.Y)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	return dst, nil
}

func (r *Rasterizer) scaleBitmap(src []byte, size int) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, img, centerSquare(img.Bounds()), draw.Over, nil)
	return dst, nil
}

// coverScale returns the uniform scale that makes a w x h source fill a
// side x side square without distortion
func coverScale(w, h, side float64) float64 {
	return max(side/w, side/h)
}

// centerSquare returns the largest square inside b, centred
func centerSquare(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}
	if w > h {
		off := (w - h) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	}
	off := (h - w) / 2
	return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
}
