package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the config file looked up in the project root
const ConfigFileName = "iconsmith.yaml"

// Project represents the site directory icons are generated for
type Project struct {
	RootPath   string
	ConfigPath string
}

// New creates a Project rooted at dir. An empty configPath selects
// <dir>/iconsmith.yaml.
func New(dir, configPath string) (*Project, error) {
	if dir == "" {
		dir = "."
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	if configPath == "" {
		configPath = filepath.Join(root, ConfigFileName)
	} else if !filepath.IsAbs(configPath) {
		configPath, err = filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	return &Project{
		RootPath:   root,
		ConfigPath: configPath,
	}, nil
}

// Exists checks if the project root is an existing directory
func (p *Project) Exists() bool {
	info, err := os.Stat(p.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Resolve returns path as an absolute path, joining relative paths onto the root
func (p *Project) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.RootPath, path)
}

// Relative returns path relative to the project root, for display
func (p *Project) Relative(path string) string {
	rel, err := filepath.Rel(p.RootPath, p.Resolve(path))
	if err != nil {
		return path
	}
	return rel
}

// HasConfig checks if the config file is present
func (p *Project) HasConfig() bool {
	_, err := os.Stat(p.ConfigPath)
	return err == nil
}
