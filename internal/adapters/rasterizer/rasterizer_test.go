package rasterizer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/izapata/iconsmith/internal/core/domain"
)

const solidSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
  <rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

const wideSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10">
  <rect x="0" y="0" width="20" height="10" fill="#0000ff"/>
</svg>`

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestRasterize_SVGSizes(t *testing.T) {
	r := New()

	for _, size := range []int{32, 192, 180} {
		img, err := r.Rasterize([]byte(solidSVG), size)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}

		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("size %d: got %dx%d", size, b.Dx(), b.Dy())
		}

		cr, cg, _, ca := img.At(size/2, size/2).RGBA()
		if cr>>8 < 200 || cg>>8 > 50 || ca>>8 < 200 {
			t.Errorf("size %d: expected opaque red centre, got r=%d g=%d a=%d", size, cr>>8, cg>>8, ca>>8)
		}
	}
}

func TestRasterize_SVGCoversSquare(t *testing.T) {
	r := New()

	img, err := r.Rasterize([]byte(wideSVG), 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cover scaling fills the whole square, so even the corners are painted
	for _, pt := range []image.Point{{1, 1}, {30, 1}, {1, 30}, {30, 30}} {
		_, _, cb, ca := img.At(pt.X, pt.Y).RGBA()
		if ca>>8 < 200 || cb>>8 < 200 {
			t.Errorf("pixel %v not covered: b=%d a=%d", pt, cb>>8, ca>>8)
		}
	}
}

func TestRasterize_SVGOffsetViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
	}{
		{"positive origin", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="5 5 10 10">
  <rect x="5" y="5" width="10" height="10" fill="#ff0000"/>
</svg>`},
		{"negative origin", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-2 -2 28 28">
  <rect x="-2" y="-2" width="28" height="28" fill="#ff0000"/>
</svg>`},
		{"wide with origin", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="100 50 40 20">
  <rect x="100" y="50" width="40" height="20" fill="#ff0000"/>
</svg>`},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, size := range []int{32, 192, 180} {
				img, err := r.Rasterize([]byte(tt.svg), size)
				if err != nil {
					t.Fatalf("size %d: unexpected error: %v", size, err)
				}

				last := size - 2
				for _, pt := range []image.Point{{1, 1}, {last, 1}, {1, last}, {last, last}, {size / 2, size / 2}} {
					cr, _, _, ca := img.At(pt.X, pt.Y).RGBA()
					if cr>>8 < 200 || ca>>8 < 200 {
						t.Errorf("size %d: pixel %v not covered: r=%d a=%d", size, pt, cr>>8, ca>>8)
					}
				}
			}
		})
	}
}

func TestRasterize_StrictRejectsUnsupportedElements(t *testing.T) {
	src := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <rect width="10" height="10" fill="#ff0000"/>
  <text x="1" y="9">hi</text>
</svg>`)

	if _, err := New().Rasterize(src, 32); err != nil {
		t.Errorf("lenient rasterizer should skip unsupported elements: %v", err)
	}
	if _, err := NewStrict().Rasterize(src, 32); err == nil {
		t.Error("strict rasterizer should reject unsupported elements")
	}
	if _, err := NewStrict().Rasterize([]byte(solidSVG), 32); err != nil {
		t.Errorf("strict rasterizer failed on a plain svg: %v", err)
	}
}

func TestRasterize_Bitmap(t *testing.T) {
	r := New()
	src := solidPNG(t, 10, 10, color.RGBA{0, 255, 0, 255})

	img, err := r.Rasterize(src, 192)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 192 || b.Dy() != 192 {
		t.Errorf("got %dx%d, want 192x192", b.Dx(), b.Dy())
	}

	_, cg, _, ca := img.At(96, 96).RGBA()
	if cg>>8 < 200 || ca>>8 < 200 {
		t.Errorf("expected opaque green centre, got g=%d a=%d", cg>>8, ca>>8)
	}
}

func TestRasterize_Errors(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		src  []byte
		size int
	}{
		{"empty source", nil, 32},
		{"not an image", []byte("definitely not an image"), 32},
		{"malformed xml", []byte("<svg viewBox=\"0 0 10 10\"><rect"), 32},
		{"svg without size", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 32},
		{"zero size", []byte(solidSVG), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Rasterize(tt.src, tt.size); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestInspect(t *testing.T) {
	r := New()

	info, err := r.Inspect([]byte(solidSVG))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Kind != domain.SourceSVG || info.Width != 10 || info.Height != 10 {
		t.Errorf("unexpected svg info: %+v", info)
	}

	info, err = r.Inspect(solidPNG(t, 12, 8, color.White))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Kind != domain.SourceBitmap || info.Format != "png" || info.Width != 12 || info.Height != 8 {
		t.Errorf("unexpected bitmap info: %+v", info)
	}

	if _, err := r.Inspect(nil); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 10, 10), image.Rect(0, 0, 10, 10)},
		{image.Rect(0, 0, 20, 10), image.Rect(5, 0, 15, 10)},
		{image.Rect(0, 0, 10, 30), image.Rect(0, 10, 10, 20)},
	}

	for _, tt := range tests {
		if got := centerSquare(tt.in); got != tt.want {
			t.Errorf("centerSquare(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoverScale(t *testing.T) {
	tests := []struct {
		w, h, side float64
		want       float64
	}{
		{20, 10, 32, 3.2},
		{10, 20, 32, 3.2},
		{10, 10, 180, 18},
	}

	for _, tt := range tests {
		if got := coverScale(tt.w, tt.h, tt.side); got != tt.want {
			t.Errorf("coverScale(%g, %g, %g) = %g, want %g", tt.w, tt.h, tt.side, got, tt.want)
		}
	}
}
