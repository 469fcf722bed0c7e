package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Output formats understood by the encoder
const (
	FormatPNG = "png"
	FormatICO = "ico"
)

// MaxPresetSize bounds the square dimension a preset may request
const MaxPresetSize = 4096

// MaxICOSize is the largest dimension an ICO directory entry can declare
const MaxICOSize = 256

// ErrExportFailed is the single failure category surfaced to callers of an export
var ErrExportFailed = errors.New("icon export failed")

// SizePreset pairs an icon's purpose with its square pixel dimension and output path
type SizePreset struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	Output string `yaml:"output"` // Relative to the project root
	Format string `yaml:"format"` // "png" or "ico"
	Rel    string `yaml:"rel"`    // HTML link relation used by the snippet
}

// DefaultPresets returns the fixed favicon / icon / apple table used when no
// config overrides it
func DefaultPresets() []SizePreset {
	return []SizePreset{
		{Name: "favicon", Size: 32, Output: filepath.Join("public", "favicon.ico"), Format: FormatPNG, Rel: "icon"},
		{Name: "icon", Size: 192, Output: filepath.Join("public", "icon.png"), Format: FormatPNG, Rel: "icon"},
		{Name: "apple", Size: 180, Output: filepath.Join("public", "apple-icon.png"), Format: FormatPNG, Rel: "apple-touch-icon"},
	}
}

// DefaultSourcePath is the vector image read when no config overrides it
var DefaultSourcePath = filepath.Join("public", "icon.svg")

// Dimensions returns the preset size formatted as WxH
func (p SizePreset) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Size, p.Size)
}

// Validate checks a single preset
func (p SizePreset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if p.Size < 1 || p.Size > MaxPresetSize {
		return fmt.Errorf("preset %q: size %d out of range 1..%d", p.Name, p.Size, MaxPresetSize)
	}
	if strings.TrimSpace(p.Output) == "" {
		return fmt.Errorf("preset %q: output path cannot be empty", p.Name)
	}
	switch p.Format {
	case FormatPNG, FormatICO:
	default:
		return fmt.Errorf("preset %q: unsupported format %q", p.Name, p.Format)
	}
	if p.Format == FormatICO && p.Size > MaxICOSize {
		return fmt.Errorf("preset %q: ico images are limited to %dx%d, got size %d", p.Name, MaxICOSize, MaxICOSize, p.Size)
	}
	return nil
}

// ValidatePresets checks every preset and rejects duplicate names
func ValidatePresets(presets []SizePreset) error {
	if len(presets) == 0 {
		return fmt.Errorf("at least one preset is required")
	}

	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// FilterPresets keeps the presets named in names, preserving table order.
// An empty names slice returns the table unchanged.
func FilterPresets(presets []SizePreset, names []string) ([]SizePreset, error) {
	if len(names) == 0 {
		return presets, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		wanted[n] = true
	}

	var filtered []SizePreset
	for _, p := range presets {
		if wanted[p.Name] {
			filtered = append(filtered, p)
			delete(wanted, p.Name)
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for _, n := range names {
			n = strings.TrimSpace(n)
			if wanted[n] {
				unknown = append(unknown, n)
				delete(wanted, n)
			}
		}
		return nil, fmt.Errorf("unknown preset(s): %s", strings.Join(unknown, ", "))
	}

	return filtered, nil
}
