package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/izapata/iconsmith/internal/core/ports"
	"github.com/izapata/iconsmith/pkg/project"
)

// FileRepository reads sources and writes artifacts relative to a project root
type FileRepository struct {
	project *project.Project
	dryRun  bool
}

// NewFileRepository creates a new file-based repository
func NewFileRepository(p *project.Project) *FileRepository {
	return &FileRepository{
		project: p,
	}
}

// NewDryRunRepository creates a repository that reads normally but never writes
func NewDryRunRepository(p *project.Project) *FileRepository {
	return &FileRepository{
		project: p,
		dryRun:  true,
	}
}

// Ensure it implements the interfaces
var (
	_ ports.SourceReader   = (*FileRepository)(nil)
	_ ports.ArtifactWriter = (*FileRepository)(nil)
)

// Read returns the content of the source image
func (r *FileRepository) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs := r.project.Resolve(path)
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", abs, err)
	}
	return data, nil
}

// Write stores data at path, overwriting any existing file
func (r *FileRepository) Write(ctx context.Context, path string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs := r.project.Resolve(path)
	if r.dryRun {
		return abs, nil
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(abs, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", abs, err)
	}

	return abs, nil
}

// CheckWritable verifies the directory for path exists or can be created
func (r *FileRepository) CheckWritable(path string) error {
	dir := filepath.Dir(r.project.Resolve(path))

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		probe, err := os.CreateTemp(dir, ".iconsmith-probe-*")
		if err != nil {
			return fmt.Errorf("%s is not writable: %w", dir, err)
		}
		probe.Close()
		return os.Remove(probe.Name())
	}
	if !os.IsNotExist(err) {
		return err
	}

	// Walk up to the first existing ancestor
	parent := filepath.Dir(dir)
	for parent != dir {
		if info, err := os.Stat(parent); err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", parent)
			}
			return nil
		}
		dir, parent = parent, filepath.Dir(parent)
	}
	return fmt.Errorf("no existing ancestor for %s", path)
}
