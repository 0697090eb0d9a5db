package models

import "fmt"

// PhotographerMatch is one entry in the server-ranked similarity list.
// SimilarityScore is a fraction in [0,1].
type PhotographerMatch struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	SimilarityScore float64 `json:"similarity_score"`
	SampleCount     int     `json:"sample_count"`
}

// ProcessedFile records how the service handled one of the uploaded images.
type ProcessedFile struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// SimilarityResult is the payload of the photographer-style similarity tool.
// SimilarPhotographers arrives pre-sorted by descending score; consumers must
// not re-sort it.
type SimilarityResult struct {
	Success              bool                `json:"success"`
	Message              string              `json:"message,omitempty"`
	TotalImagesProcessed int                 `json:"total_images_processed"`
	SimilarPhotographers []PhotographerMatch `json:"similar_photographers"`
	ProcessedFiles       []ProcessedFile     `json:"processed_files,omitempty"`
}

func (r *SimilarityResult) Ok() bool { return r.Success }

func (r *SimilarityResult) FailureMessage() string { return r.Message }

func (r *SimilarityResult) Summary() string {
	return fmt.Sprintf("matched %d photographers from %d images",
		len(r.SimilarPhotographers), r.TotalImagesProcessed)
}
