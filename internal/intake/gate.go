// Package intake validates and normalizes a drop/selection event into the
// accepted file batch for one tool variant.
package intake

import (
	"strings"

	"github.com/framecheck/framecheck-go/internal/models"
)

// Gate filters candidate files per a tool variant's policy.
//
// AcceptedTypes holds MIME patterns: exact types ("image/png") or a
// type-level wildcard ("image/*"). MaxFiles caps how many files one
// acceptance event may produce.
type Gate struct {
	AcceptedTypes []string
	MaxFiles      int
}

// SingleImage is the policy of the analysis and crop tools: one image per
// acceptance.
func SingleImage() Gate {
	return Gate{AcceptedTypes: []string{"image/*"}, MaxFiles: 1}
}

// MultiImage is the policy of the similarity tool: up to maxFiles images per
// acceptance.
func MultiImage(maxFiles int) Gate {
	if maxFiles < 1 {
		maxFiles = 1
	}
	return Gate{AcceptedTypes: []string{"image/*"}, MaxFiles: maxFiles}
}

// Accept returns the files that pass the type filter, truncated to MaxFiles
// in encounter order. Rejection is silent: unsupported types and excess files
// are dropped, never surfaced as errors. Each call describes a complete new
// batch; callers replace any prior selection with the returned slice.
func (g Gate) Accept(candidates []models.SelectedFile) []models.SelectedFile {
	accepted := make([]models.SelectedFile, 0, g.MaxFiles)

	for _, c := range candidates {
		if !g.matches(c.ContentType) {
			continue
		}
		accepted = append(accepted, c)
		if len(accepted) == g.MaxFiles {
			break
		}
	}

	return accepted
}

func (g Gate) matches(contentType string) bool {
	// Declared types may carry parameters ("image/jpeg; charset=binary").
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return false
	}

	for _, pattern := range g.AcceptedTypes {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == ct {
			return true
		}
		if base, ok := strings.CutSuffix(p, "/*"); ok && strings.HasPrefix(ct, base+"/") {
			return true
		}
	}
	return false
}
