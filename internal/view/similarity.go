package view

import "github.com/framecheck/framecheck-go/internal/models"

// MatchView is one ranked photographer match. Rank follows the server's
// order; the projector never re-sorts.
type MatchView struct {
	Rank        int
	Ordinal     string
	Name        string
	Description string
	Percent     int
	SampleCount int
}

type FileStatusView struct {
	Filename string
	Status   string
	Error    string
}

// SimilarityView is the display model of a style-similarity result.
type SimilarityView struct {
	TotalProcessed int
	Matches        []MatchView
	Files          []FileStatusView
}

// Similarity projects r, decorating the top three matches with podium
// ordinals and converting scores to whole percentages.
func Similarity(r *models.SimilarityResult) SimilarityView {
	var v SimilarityView
	if r == nil {
		return v
	}

	v.TotalProcessed = r.TotalImagesProcessed

	for i, m := range r.SimilarPhotographers {
		rank := i + 1
		v.Matches = append(v.Matches, MatchView{
			Rank:        rank,
			Ordinal:     Ordinal(rank),
			Name:        m.Name,
			Description: m.Description,
			Percent:     Percent(m.SimilarityScore),
			SampleCount: m.SampleCount,
		})
	}

	for _, f := range r.ProcessedFiles {
		v.Files = append(v.Files, FileStatusView{
			Filename: f.Filename,
			Status:   f.Status,
			Error:    f.Error,
		})
	}

	return v
}
