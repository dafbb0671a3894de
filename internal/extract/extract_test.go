package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter is a test double for the DOC conversion port.
type fakeConverter struct {
	text string
	err  error
}

func (f *fakeConverter) Convert(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func writeDocx(t *testing.T, dir, name string, paragraphs ...string) string {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestRegistrySupported(t *testing.T) {
	r := NewRegistry(nil)

	assert.True(t, r.Supported("cv.pdf"))
	assert.True(t, r.Supported("cv.docx"))
	assert.True(t, r.Supported("cv.doc"))
	assert.True(t, r.Supported("RESUME.PDF"))
	assert.False(t, r.Supported("cv.txt"))
	assert.False(t, r.Supported("cv"))
}

func TestRegistryUnsupportedFormat(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.ExtractText(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDocxExtraction(t *testing.T) {
	dir := t.TempDir()
	path := writeDocx(t, dir, "cv.docx",
		"Senior Engineer",
		"Worked at Acme Corp",
		"Education: State University")

	r := NewRegistry(nil)
	text, err := r.ExtractText(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer\nWorked at Acme Corp\nEducation: State University", text)
}

func TestDocxExtractionNotAnArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	r := NewRegistry(nil)
	_, err := r.ExtractText(context.Background(), path)
	assert.Error(t, err)
}

func TestDocxExtractionMissingDocumentPart(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, "empty.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	r := NewRegistry(nil)
	_, err = r.ExtractText(context.Background(), path)
	assert.Error(t, err)
}

func TestPDFExtractionMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not actually a pdf"), 0644))

	r := NewRegistry(nil)
	_, err := r.ExtractText(context.Background(), path)
	assert.Error(t, err)
}

func TestDocWithoutConverter(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.ExtractText(context.Background(), "legacy.doc")
	assert.ErrorIs(t, err, ErrConverterUnavailable)
}

func TestDocDelegatesToConverter(t *testing.T) {
	r := NewRegistry(&fakeConverter{text: "Worked at Ghost LLC"})

	text, err := r.ExtractText(context.Background(), "legacy.doc")
	require.NoError(t, err)
	assert.Equal(t, "Worked at Ghost LLC", text)
}

func TestDocConverterFailure(t *testing.T) {
	r := NewRegistry(&fakeConverter{err: errors.New("conversion exploded")})

	_, err := r.ExtractText(context.Background(), "legacy.doc")
	assert.ErrorContains(t, err, "conversion exploded")
}

func TestSofficeConverterMissingBinary(t *testing.T) {
	c := NewSofficeConverter("soffice-definitely-not-installed", time.Second)

	_, err := c.Convert(context.Background(), "whatever.doc")
	assert.Error(t, err)
}
