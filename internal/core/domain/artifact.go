package domain

// SourceKind identifies how a source image is decoded
type SourceKind string

const (
	SourceSVG    SourceKind = "svg"
	SourceBitmap SourceKind = "bitmap"
)

// SourceInfo describes a decoded source image
type SourceInfo struct {
	Path   string
	Kind   SourceKind
	Format string // Decoder name (svg, png, jpeg, gif)
	Width  float64
	Height float64
	Bytes  int
}

// Artifact is a raster file produced for one preset
type Artifact struct {
	Preset SizePreset
	Path   string // Absolute path written
	Bytes  int
}
