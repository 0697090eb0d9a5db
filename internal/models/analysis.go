package models

import "fmt"

// ImageInfo describes the uploaded image as the service saw it.
type ImageInfo struct {
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// AnalysisImages holds the rendered analysis views as base64 data URLs.
// Any subset may be absent.
type AnalysisImages struct {
	Original     string `json:"original,omitempty"`
	RuleOfThirds string `json:"rule_of_thirds,omitempty"`
	LeadingLines string `json:"leading_lines,omitempty"`
	Overlay      string `json:"overlay,omitempty"`
}

// RuleOfThirdsSummary is the technical summary of the rule-of-thirds check.
type RuleOfThirdsSummary struct {
	FollowsRule            bool    `json:"follows_rule_of_thirds"`
	SubjectDetected        bool    `json:"subject_detected"`
	DistanceToIntersection float64 `json:"distance_to_intersection"`
}

// LeadingLinesSummary is the technical summary of the leading-lines check.
type LeadingLinesSummary struct {
	TotalLines     int  `json:"total_lines"`
	DiagonalLines  int  `json:"diagonal_lines"`
	CornerLines    int  `json:"corner_lines"`
	HasStrongLines bool `json:"has_strong_leading_lines"`
}

type TechnicalSummary struct {
	RuleOfThirds *RuleOfThirdsSummary `json:"rule_of_thirds,omitempty"`
	LeadingLines *LeadingLinesSummary `json:"leading_lines,omitempty"`
}

// AIFeedback is the generated instructor feedback. The whole block is
// optional: the service omits it when the feedback backend is unavailable.
type AIFeedback struct {
	OverallAssessment string `json:"overall_assessment,omitempty"`
	WhatWorksWell     string `json:"what_works_well,omitempty"`
	Suggestions       string `json:"suggestions,omitempty"`
	AdvancedTechnique string `json:"advanced_technique,omitempty"`
	TokensUsed        int    `json:"tokens_used,omitempty"`
}

// AnalysisResult is the payload of the single-image composition analysis.
type AnalysisResult struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message,omitempty"`
	ImageInfo        *ImageInfo        `json:"image_info,omitempty"`
	Images           *AnalysisImages   `json:"images,omitempty"`
	TechnicalSummary *TechnicalSummary `json:"technical_summary,omitempty"`
	AIFeedback       *AIFeedback       `json:"ai_feedback,omitempty"`
}

func (r *AnalysisResult) Ok() bool { return r.Success }

func (r *AnalysisResult) FailureMessage() string { return r.Message }

func (r *AnalysisResult) Summary() string {
	if r.ImageInfo != nil {
		return fmt.Sprintf("composition analysis of %s (%dx%d)",
			r.ImageInfo.Filename, r.ImageInfo.Width, r.ImageInfo.Height)
	}
	return "composition analysis complete"
}
