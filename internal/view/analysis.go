package view

import (
	"fmt"

	"github.com/framecheck/framecheck-go/internal/models"
)

// ImageView is one named analysis image ready for display.
type ImageView struct {
	Label   string
	DataURL string
}

type ImageInfoView struct {
	Filename   string
	Dimensions string
}

type RuleOfThirdsView struct {
	FollowsRule     bool
	SubjectDetected bool
	DistancePixels  int
}

type LeadingLinesView struct {
	TotalLines     int
	DiagonalLines  int
	CornerLines    int
	HasStrongLines bool
}

type FeedbackView struct {
	OverallAssessment string
	WhatWorksWell     string
	Suggestions       string
	AdvancedTechnique string
}

// AnalysisView is the display model of a composition-analysis result. Nil
// section pointers mean the corresponding UI section is omitted.
type AnalysisView struct {
	ImageInfo    *ImageInfoView
	Images       []ImageView
	RuleOfThirds *RuleOfThirdsView
	LeadingLines *LeadingLinesView
	Feedback     *FeedbackView
}

// Analysis projects r. Any of image info, images, either technical summary,
// or AI feedback may be absent; the sections that are present still render.
func Analysis(r *models.AnalysisResult) AnalysisView {
	var v AnalysisView
	if r == nil {
		return v
	}

	if info := r.ImageInfo; info != nil {
		v.ImageInfo = &ImageInfoView{
			Filename:   info.Filename,
			Dimensions: fmt.Sprintf("%dx%d", info.Width, info.Height),
		}
	}

	if imgs := r.Images; imgs != nil {
		named := []struct {
			label string
			url   string
		}{
			{"Original", imgs.Original},
			{"Rule of Thirds", imgs.RuleOfThirds},
			{"Leading Lines", imgs.LeadingLines},
			{"Combined Overlay", imgs.Overlay},
		}
		for _, n := range named {
			if n.url == "" {
				continue
			}
			v.Images = append(v.Images, ImageView{Label: n.label, DataURL: n.url})
		}
	}

	if ts := r.TechnicalSummary; ts != nil {
		if rot := ts.RuleOfThirds; rot != nil {
			v.RuleOfThirds = &RuleOfThirdsView{
				FollowsRule:     rot.FollowsRule,
				SubjectDetected: rot.SubjectDetected,
				DistancePixels:  Pixels(rot.DistanceToIntersection),
			}
		}
		if ll := ts.LeadingLines; ll != nil {
			v.LeadingLines = &LeadingLinesView{
				TotalLines:     ll.TotalLines,
				DiagonalLines:  ll.DiagonalLines,
				CornerLines:    ll.CornerLines,
				HasStrongLines: ll.HasStrongLines,
			}
		}
	}

	if fb := r.AIFeedback; fb != nil {
		v.Feedback = &FeedbackView{
			OverallAssessment: fb.OverallAssessment,
			WhatWorksWell:     fb.WhatWorksWell,
			Suggestions:       fb.Suggestions,
			AdvancedTechnique: fb.AdvancedTechnique,
		}
	}

	return v
}
