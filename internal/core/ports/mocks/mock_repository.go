package mocks

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/izapata/iconsmith/internal/core/domain"
)

// MockRepository is an in-memory SourceReader and ArtifactWriter
type MockRepository struct {
	mu      sync.RWMutex
	files   map[string][]byte
	reads   []string
	writes  []string
	failOn  map[string]error
	readErr error
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		files:  make(map[string][]byte),
		failOn: make(map[string]error),
	}
}

// Put stores a file as if it already existed
func (m *MockRepository) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
}

// File returns the stored content for path
func (m *MockRepository) File(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// SetReadError makes every Read fail with err
func (m *MockRepository) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWriteOn makes Write to path fail with err
func (m *MockRepository) FailWriteOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn[path] = err
}

// Read returns stored content
func (m *MockRepository) Read(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads = append(m.reads, path)
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return data, nil
}

// Write stores content, replacing what was there
func (m *MockRepository) Write(ctx context.Context, path string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failOn[path]; ok {
		return "", err
	}
	m.writes = append(m.writes, path)
	m.files[path] = data
	return filepath.Join("/fake/root", path), nil
}

// GetReads returns every path passed to Read
func (m *MockRepository) GetReads() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.reads...)
}

// GetWrites returns every path successfully written, in order
func (m *MockRepository) GetWrites() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.writes...)
}

// MockRasterizer returns blank images of the requested size
type MockRasterizer struct {
	mu     sync.Mutex
	calls  []int
	failAt map[int]error
}

// NewMockRasterizer creates a new mock rasterizer
func NewMockRasterizer() *MockRasterizer {
	return &MockRasterizer{failAt: make(map[int]error)}
}

// FailOnSize makes Rasterize fail for the given size
func (m *MockRasterizer) FailOnSize(size int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAt[size] = err
}

// Rasterize records the call and returns a blank size x size image
func (m *MockRasterizer) Rasterize(src []byte, size int) (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, size)
	if err, ok := m.failAt[size]; ok {
		return nil, err
	}
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

// Inspect reports a fixed 10x10 svg
func (m *MockRasterizer) Inspect(src []byte) (*domain.SourceInfo, error) {
	return &domain.SourceInfo{Kind: domain.SourceSVG, Format: "svg", Width: 10, Height: 10, Bytes: len(src)}, nil
}

// GetCalls returns the sizes requested so far
func (m *MockRasterizer) GetCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.calls...)
}

// MockEncoder encodes an image as its formatted dimensions
type MockEncoder struct{}

// NewMockEncoder creates a new mock encoder
func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

// Encode returns "<format>:<w>x<h>"
func (m *MockEncoder) Encode(img image.Image, format string) ([]byte, error) {
	b := img.Bounds()
	return []byte(fmt.Sprintf("%s:%dx%d", format, b.Dx(), b.Dy())), nil
}
