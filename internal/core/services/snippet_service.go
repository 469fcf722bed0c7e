package services

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/izapata/iconsmith/internal/core/domain"
)

// SnippetService renders the HTML <link> tags that reference exported icons
type SnippetService struct {
	publicDir string
}

// NewSnippetService creates a snippet service. Hrefs are computed relative to
// publicDir, which is the directory the site serves from /.
func NewSnippetService(publicDir string) *SnippetService {
	return &SnippetService{publicDir: publicDir}
}

// SnippetRequest represents a request to render link tags
type SnippetRequest struct {
	Presets []domain.SizePreset
}

// SnippetResponse holds one tag per preset, in table order
type SnippetResponse struct {
	Tags []string
}

// String joins the tags one per line
func (r *SnippetResponse) String() string {
	return strings.Join(r.Tags, "\n")
}

// Execute renders the tags
func (s *SnippetService) Execute(req SnippetRequest) *SnippetResponse {
	resp := &SnippetResponse{Tags: make([]string, 0, len(req.Presets))}
	for _, p := range req.Presets {
		resp.Tags = append(resp.Tags, s.linkTag(p))
	}
	return resp
}

// Href returns the URL path a preset's output is served at
func (s *SnippetService) Href(p domain.SizePreset) string {
	out := filepath.Clean(p.Output)
	if s.publicDir != "" {
		if rel, err := filepath.Rel(filepath.Clean(s.publicDir), out); err == nil && !strings.HasPrefix(rel, "..") {
			out = rel
		}
	}
	return path.Join("/", filepath.ToSlash(out))
}

func (s *SnippetService) linkTag(p domain.SizePreset) string {
	rel := p.Rel
	if rel == "" {
		rel = "icon"
	}
	href := s.Href(p)

	switch {
	case rel == "apple-touch-icon":
		return fmt.Sprintf(`<link rel="%s" href="%s" />`, rel, href)
	case strings.EqualFold(filepath.Ext(p.Output), ".ico"):
		return fmt.Sprintf(`<link rel="%s" href="%s" sizes="any" />`, rel, href)
	default:
		return fmt.Sprintf(`<link rel="%s" href="%s" type="image/png" sizes="%s" />`, rel, href, p.Dimensions())
	}
}
