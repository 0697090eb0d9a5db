package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/framecheck/framecheck-go/internal/filex"
	"github.com/framecheck/framecheck-go/internal/models"
	"github.com/framecheck/framecheck-go/internal/session"
	"github.com/framecheck/framecheck-go/internal/view"
)

var errNothingAccepted = errors.New("no supported image files in selection")

// Analyze runs the composition-analysis tool on one file.
func (a *App) Analyze(ctx context.Context, paths []string) error {
	if len(paths) != 1 {
		printlnFn("Usage: analyze <image>")
		return nil
	}

	snap, err := a.runTool(ctx, session.ToolAnalysis, paths)
	if err != nil {
		return err
	}
	if snap.Status == session.StatusSucceeded {
		renderAnalysis(view.Analysis(snap.Result.(*models.AnalysisResult)))
	}
	return nil
}

// Similar runs the photographer-style similarity tool on up to four files.
func (a *App) Similar(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		printlnFn("Usage: similar <image> [image ...]  (up to", session.MaxSimilarityFiles, "images)")
		return nil
	}

	snap, err := a.runTool(ctx, session.ToolSimilarity, paths)
	if err != nil {
		return err
	}
	if snap.Status == session.StatusSucceeded {
		renderSimilarity(view.Similarity(snap.Result.(*models.SimilarityResult)))
	}
	return nil
}

// Crop runs the smart-crop suggestion tool on one file.
func (a *App) Crop(ctx context.Context, paths []string) error {
	if len(paths) != 1 {
		printlnFn("Usage: crop <image>")
		return nil
	}

	snap, err := a.runTool(ctx, session.ToolCrop, paths)
	if err != nil {
		return err
	}
	if snap.Status == session.StatusSucceeded {
		renderCrop(view.Crop(snap.Result.(*models.CropResult)))
	}
	return nil
}

// runTool feeds paths through the tool's intake gate, submits, and waits for
// the submission to settle. Failures are printed the way the session recorded
// them; the snapshot is returned for variant-specific rendering.
func (a *App) runTool(ctx context.Context, tool session.Tool, paths []string) (session.Snapshot, error) {
	files, err := filex.ReadSelectedAll(paths)
	if err != nil {
		printlnFn("error:", err)
		return session.Snapshot{}, err
	}

	s := a.sessions[tool]
	if n := s.SelectFiles(ctx, files); n == 0 {
		printlnFn(errNothingAccepted.Error())
		return s.Snapshot(), errNothingAccepted
	}

	printlnFn(fmt.Sprintf("uploading %d file(s)...", len(s.Snapshot().Files)))
	<-s.Submit(ctx)

	snap := s.Snapshot()
	if snap.Status == session.StatusFailed && snap.Failure != nil {
		printlnFn("error:", snap.Failure.Message)
	}
	return snap, nil
}
