package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions no extractor is
// registered for.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TextExtractor turns one document format into plain text, lines separated
// by "\n". Implementations are independent per format so a decode failure
// in one format never affects another.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Registry dispatches extraction by declared file extension.
type Registry struct {
	extractors map[string]TextExtractor
}

// NewRegistry builds a registry covering PDF, DOCX and legacy DOC. The DOC
// extractor delegates to converter; pass nil when no conversion backend is
// available on the host.
func NewRegistry(converter DocConverter) *Registry {
	return &Registry{
		extractors: map[string]TextExtractor{
			".pdf":  &PDFExtractor{},
			".docx": &DocxExtractor{},
			".doc":  NewDocExtractor(converter),
		},
	}
}

// Supported reports whether filename carries a registered extension.
func (r *Registry) Supported(filename string) bool {
	_, ok := r.extractors[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ExtractText dispatches to the extractor registered for path's extension.
func (r *Registry) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ex, ok := r.extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return ex.ExtractText(ctx, path)
}
