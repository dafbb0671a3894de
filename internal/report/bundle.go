package report

import (
	"archive/zip"
	"fmt"
	"io"
)

// File is an original uploaded document staged for download.
type File struct {
	Name    string
	Content []byte
}

// WriteBundle writes a ZIP archive containing each file under its original
// name, for the multiple-genuine-resumes download.
func WriteBundle(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("add %s to archive: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Content); err != nil {
			return fmt.Errorf("add %s to archive: %w", f.Name, err)
		}
	}
	return zw.Close()
}
