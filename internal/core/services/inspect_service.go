package services

import (
	"context"
	"fmt"

	"github.com/izapata/iconsmith/internal/core/domain"
	"github.com/izapata/iconsmith/internal/core/ports"
)

// InspectService decodes the source image without writing anything
type InspectService struct {
	reader     ports.SourceReader
	rasterizer ports.Rasterizer
}

// NewInspectService creates a new inspect service
func NewInspectService(reader ports.SourceReader, rasterizer ports.Rasterizer) *InspectService {
	return &InspectService{
		reader:     reader,
		rasterizer: rasterizer,
	}
}

// InspectRequest represents a request to inspect a source image
type InspectRequest struct {
	SourcePath string
}

// Execute reads and decodes the source
func (s *InspectService) Execute(ctx context.Context, req InspectRequest) (*domain.SourceInfo, error) {
	src, err := s.reader.Read(ctx, req.SourcePath)
	if err != nil {
		return nil, err
	}

	info, err := s.rasterizer.Inspect(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", req.SourcePath, err)
	}
	info.Path = req.SourcePath
	return info, nil
}
