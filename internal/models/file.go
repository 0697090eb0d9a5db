// Package models defines the files a session holds and the result payloads
// the analysis service returns.
package models

// SelectedFile is one user-picked image awaiting upload: the raw bytes plus
// the metadata the intake gate validated. A SelectedFile belongs to exactly
// one upload session at a time.
type SelectedFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}
