package cli

import (
	"fmt"

	"github.com/framecheck/framecheck-go/internal/view"
)

func renderAnalysis(v view.AnalysisView) {
	if v.ImageInfo != nil {
		printlnFn("Analyzed", v.ImageInfo.Filename, "("+v.ImageInfo.Dimensions+")")
	}

	if rot := v.RuleOfThirds; rot != nil {
		printlnFn("Rule of thirds:")
		printlnFn("  follows rule:", yesNo(rot.FollowsRule))
		printlnFn("  subject detected:", yesNo(rot.SubjectDetected))
		printlnFn("  distance to nearest intersection:", fmt.Sprintf("%dpx", rot.DistancePixels))
	}

	if ll := v.LeadingLines; ll != nil {
		printlnFn("Leading lines:")
		printlnFn("  total:", ll.TotalLines, "diagonal:", ll.DiagonalLines, "from corners:", ll.CornerLines)
		printlnFn("  strong leading lines:", yesNo(ll.HasStrongLines))
	}

	if fb := v.Feedback; fb != nil {
		printlnFn("Feedback:")
		if fb.OverallAssessment != "" {
			printlnFn("  assessment:", fb.OverallAssessment)
		}
		if fb.WhatWorksWell != "" {
			printlnFn("  works well:", fb.WhatWorksWell)
		}
		if fb.Suggestions != "" {
			printlnFn("  suggestions:", fb.Suggestions)
		}
		if fb.AdvancedTechnique != "" {
			printlnFn("  try next:", fb.AdvancedTechnique)
		}
	}

	if len(v.Images) > 0 {
		printlnFn("Analysis images:")
		for _, img := range v.Images {
			printlnFn("  "+img.Label+":", sizeLabel(img.DataURL))
		}
	}
}

func renderSimilarity(v view.SimilarityView) {
	printlnFn("Processed", v.TotalProcessed, "image(s)")

	for _, m := range v.Matches {
		label := m.Ordinal
		if label == "" {
			label = fmt.Sprintf("#%d", m.Rank)
		}
		printlnFn(fmt.Sprintf("%s %s — %d%% (%d samples)", label, m.Name, m.Percent, m.SampleCount))
		if m.Description != "" {
			printlnFn("   ", m.Description)
		}
	}

	for _, f := range v.Files {
		line := "  " + f.Filename + ": " + f.Status
		if f.Error != "" {
			line += " (" + f.Error + ")"
		}
		printlnFn(line)
	}
}

func renderCrop(v view.CropView) {
	printlnFn("Subject detected:", yesNo(v.SubjectDetected))
	if v.SubjectCenter != "" {
		printlnFn("Subject center:", v.SubjectCenter)
	}
	if v.CropBox != "" {
		printlnFn("Suggested crop:", v.CropBox)
	}
	if v.RatioLabel != "" {
		printlnFn("Crop ratio:", v.RatioLabel)
	}
	if v.After != "" {
		printlnFn("Cropped image:", sizeLabel(v.After))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// sizeLabel summarizes a data URL; dumping base64 to a terminal helps nobody.
func sizeLabel(dataURL string) string {
	return fmt.Sprintf("[%d bytes]", len(dataURL))
}
