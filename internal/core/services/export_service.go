package services

import (
	"context"
	"fmt"

	"github.com/izapata/iconsmith/internal/core/domain"
	"github.com/izapata/iconsmith/internal/core/ports"
)

// ExportService renders the source image once per size preset
type ExportService struct {
	reader     ports.SourceReader
	writer     ports.ArtifactWriter
	rasterizer ports.Rasterizer
	encoder    ports.Encoder
}

// NewExportService creates a new export service
func NewExportService(reader ports.SourceReader, writer ports.ArtifactWriter, rasterizer ports.Rasterizer, encoder ports.Encoder) *ExportService {
	return &ExportService{
		reader:     reader,
		writer:     writer,
		rasterizer: rasterizer,
		encoder:    encoder,
	}
}

// ExportRequest represents a request to export icons
type ExportRequest struct {
	SourcePath string
	Presets    []domain.SizePreset

	// OnArtifact, if set, is called after each file is written
	OnArtifact func(domain.Artifact)
}

// ExportResponse represents the response from an export
type ExportResponse struct {
	SourcePath string
	Artifacts  []domain.Artifact
}

// Execute reads the source once and writes one artifact per preset, in table
// order. The first failure stops the run; artifacts already written stay on
// disk and are listed in the returned response. Every error wraps
// domain.ErrExportFailed.
func (s *ExportService) Execute(ctx context.Context, req ExportRequest) (*ExportResponse, error) {
	resp := &ExportResponse{
		SourcePath: req.SourcePath,
		Artifacts:  []domain.Artifact{},
	}

	if err := domain.ValidatePresets(req.Presets); err != nil {
		return resp, fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}

	src, err := s.reader.Read(ctx, req.SourcePath)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}

	for _, preset := range req.Presets {
		if err := ctx.Err(); err != nil {
			return resp, fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}

		artifact, err := s.exportOne(ctx, src, preset)
		if err != nil {
			return resp, fmt.Errorf("%w: %s: %w", domain.ErrExportFailed, preset.Name, err)
		}

		resp.Artifacts = append(resp.Artifacts, *artifact)
		if req.OnArtifact != nil {
			req.OnArtifact(*artifact)
		}
	}

	return resp, nil
}

func (s *ExportService) exportOne(ctx context.Context, src []byte, preset domain.SizePreset) (*domain.Artifact, error) {
	img, err := s.rasterizer.Rasterize(src, preset.Size)
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	data, err := s.encoder.Encode(img, preset.Format)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	path, err := s.writer.Write(ctx, preset.Output, data)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	return &domain.Artifact{
		Preset: preset,
		Path:   path,
		Bytes:  len(data),
	}, nil
}
