// Package api implements the HTTP client for the remote analysis service.
package api

import (
	"context"

	"github.com/framecheck/framecheck-go/internal/models"
)

// Client is the surface the upload sessions consume. Each call issues exactly
// one request; there is no retry. Payloads are returned even when the service
// reports success=false, so callers can distinguish application failures from
// transport failures.
type Client interface {
	// Ping checks service reachability via the health endpoint.
	Ping(ctx context.Context) error

	// AnalyzeImage submits one image for composition analysis.
	AnalyzeImage(ctx context.Context, file models.SelectedFile) (*models.AnalysisResult, error)

	// FindSimilar submits up to four images for photographer-style matching.
	FindSimilar(ctx context.Context, files []models.SelectedFile) (*models.SimilarityResult, error)

	// SuggestCrop submits one image for a smart-crop suggestion.
	SuggestCrop(ctx context.Context, file models.SelectedFile) (*models.CropResult, error)
}
