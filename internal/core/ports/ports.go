package ports

import (
	"context"
	"image"

	"github.com/izapata/iconsmith/internal/core/domain"
)

// SourceReader defines the port for loading the source image
type SourceReader interface {
	// Read returns the raw bytes of the source image
	Read(ctx context.Context, path string) ([]byte, error)
}

// ArtifactWriter defines the port for persisting rendered icons
type ArtifactWriter interface {
	// Write stores data at path, replacing any existing file
	// Returns the absolute path written
	Write(ctx context.Context, path string, data []byte) (string, error)
}

// Rasterizer defines the port for turning a source buffer into pixels
type Rasterizer interface {
	// Rasterize renders src into a size x size image
	Rasterize(src []byte, size int) (image.Image, error)

	// Inspect decodes src without rendering and reports what it found
	Inspect(src []byte) (*domain.SourceInfo, error)
}

// Encoder defines the port for serializing an image into an output format
type Encoder interface {
	// Encode serializes img in the given format ("png" or "ico")
	Encode(img image.Image, format string) ([]byte, error)
}
