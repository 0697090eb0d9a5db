package view

import (
	"fmt"

	"github.com/framecheck/framecheck-go/internal/models"
)

// CropView is the display model of a smart-crop suggestion.
type CropView struct {
	SubjectDetected bool
	SubjectCenter   string // "(x, y)", "" when not detected
	CropBox         string // "(x1, y1)-(x2, y2)", "" when absent
	RatioLabel      string // "1.50:1", "" when the ratio is absent
	Before          string
	After           string
}

// Crop projects r. Missing coordinates or images degrade to empty fields.
func Crop(r *models.CropResult) CropView {
	var v CropView
	if r == nil {
		return v
	}

	v.SubjectDetected = r.SubjectDetected

	if c := r.SubjectCenter; c != nil {
		v.SubjectCenter = fmt.Sprintf("(%d, %d)", c.X, c.Y)
	}
	if b := r.CropBox; b != nil {
		v.CropBox = fmt.Sprintf("(%d, %d)-(%d, %d)", b.X1, b.Y1, b.X2, b.Y2)
	}
	if r.CropRatio > 0 {
		v.RatioLabel = RatioLabel(r.CropRatio)
	}
	if imgs := r.Images; imgs != nil {
		v.Before = imgs.Original
		v.After = imgs.Cropped
	}

	return v
}
