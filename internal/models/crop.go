package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrBadCoordinates = errors.New("bad coordinate array")

// Point is an (x, y) pixel coordinate. On the wire it is a two-element array.
type Point struct {
	X int
	Y int
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var coords []int
	if err := json.Unmarshal(b, &coords); err != nil {
		return err
	}
	if len(coords) != 2 {
		return fmt.Errorf("%w: want 2 elements, got %d", ErrBadCoordinates, len(coords))
	}
	p.X, p.Y = coords[0], coords[1]
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{p.X, p.Y})
}

// Box is a crop rectangle. On the wire it is a four-element [x1,y1,x2,y2]
// array.
type Box struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

func (b *Box) UnmarshalJSON(data []byte) error {
	var coords []int
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	if len(coords) != 4 {
		return fmt.Errorf("%w: want 4 elements, got %d", ErrBadCoordinates, len(coords))
	}
	b.X1, b.Y1, b.X2, b.Y2 = coords[0], coords[1], coords[2], coords[3]
	return nil
}

func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{b.X1, b.Y1, b.X2, b.Y2})
}

// CropImages holds the before/after renders as base64 data URLs.
type CropImages struct {
	Original string `json:"original,omitempty"`
	Cropped  string `json:"cropped,omitempty"`
}

// CropResult is the payload of the smart-crop suggestion tool. The service
// reports failures in the "error" field rather than "message".
type CropResult struct {
	Success         bool        `json:"success"`
	Error           string      `json:"error,omitempty"`
	SubjectDetected bool        `json:"subject_detected"`
	SubjectCenter   *Point      `json:"subject_center,omitempty"`
	CropBox         *Box        `json:"crop_box,omitempty"`
	CropRatio       float64     `json:"crop_ratio"`
	Images          *CropImages `json:"images,omitempty"`
}

func (r *CropResult) Ok() bool { return r.Success }

func (r *CropResult) FailureMessage() string { return r.Error }

func (r *CropResult) Summary() string {
	if r.SubjectDetected {
		return fmt.Sprintf("crop suggested around detected subject, ratio %.2f", r.CropRatio)
	}
	return fmt.Sprintf("crop suggested, ratio %.2f", r.CropRatio)
}
