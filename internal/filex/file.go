// Package filex turns files on disk into intake candidates for the CLI.
package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/framecheck/framecheck-go/internal/models"
)

// ReadSelected loads path into a SelectedFile. The media type comes from the
// file extension when it is known, otherwise from sniffing the leading bytes.
func ReadSelected(path string) (models.SelectedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("reading %s: %w", path, err)
	}

	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	return models.SelectedFile{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: ct,
		Data:        data,
	}, nil
}

// ReadSelectedAll loads every path, failing on the first unreadable file.
func ReadSelectedAll(paths []string) ([]models.SelectedFile, error) {
	out := make([]models.SelectedFile, 0, len(paths))
	for _, p := range paths {
		f, err := ReadSelected(p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
