package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"
)

// ErrConverterUnavailable is returned for legacy DOC files on hosts where
// no conversion backend is installed.
var ErrConverterUnavailable = errors.New("doc conversion unsupported on this platform")

// DocConverter is the port to an external facility that converts a legacy
// binary DOC file to plain text. Backends are deployment-environment
// variants, not algorithm variants; the extractor never branches on which
// one is behind the port.
type DocConverter interface {
	Convert(ctx context.Context, inputPath string) (string, error)
}

// DocExtractor handles legacy DOC files by delegating to a DocConverter.
type DocExtractor struct {
	converter DocConverter
}

// NewDocExtractor wraps converter; with nil, extraction fails with
// ErrConverterUnavailable instead of crashing.
func NewDocExtractor(converter DocConverter) *DocExtractor {
	return &DocExtractor{converter: converter}
}

func (e *DocExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if e.converter == nil {
		return "", ErrConverterUnavailable
	}
	return e.converter.Convert(ctx, path)
}

// SofficeConverter converts through a headless LibreOffice invocation.
// Each conversion gets its own scoped working directory, removed on every
// exit path, and an explicit timeout; expiry kills the subprocess and is
// reported as a conversion failure.
type SofficeConverter struct {
	binary  string
	timeout time.Duration
}

func NewSofficeConverter(binary string, timeout time.Duration) *SofficeConverter {
	if binary == "" {
		binary = "soffice"
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &SofficeConverter{binary: binary, timeout: timeout}
}

func (c *SofficeConverter) Convert(ctx context.Context, inputPath string) (string, error) {
	outDir, err := os.MkdirTemp("", "doc-convert-*")
	if err != nil {
		return "", fmt.Errorf("create conversion dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary,
		"--headless", "--convert-to", "txt:Text", "--outdir", outDir, inputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("doc conversion timed out after %s", c.timeout)
		}
		return "", fmt.Errorf("convert doc: %w: %s", err, strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	content, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return "", fmt.Errorf("doc conversion produced no output: %w", err)
	}
	return string(content), nil
}

// DocconvConverter converts through the docconv library, which drives the
// wv toolchain for legacy DOC files.
type DocconvConverter struct{}

func (DocconvConverter) Convert(_ context.Context, inputPath string) (string, error) {
	res, err := docconv.ConvertPath(inputPath)
	if err != nil {
		return "", fmt.Errorf("convert doc: %w", err)
	}
	return res.Body, nil
}

// ResolveDocConverter picks a conversion backend from what the host has
// installed, preferring LibreOffice. Returns nil when neither backend is
// available.
func ResolveDocConverter(timeout time.Duration) DocConverter {
	if path, err := exec.LookPath("soffice"); err == nil {
		return NewSofficeConverter(path, timeout)
	}
	if _, err := exec.LookPath("wvText"); err == nil {
		return DocconvConverter{}
	}
	return nil
}
