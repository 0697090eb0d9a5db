// Package session implements the upload-and-analysis session state machine
// shared by the three tool variants. A session owns its selected files, their
// preview handles, the single in-flight upload, and the last result or
// failure.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/framecheck/framecheck-go/internal/api"
	"github.com/framecheck/framecheck-go/internal/intake"
	"github.com/framecheck/framecheck-go/internal/logging"
	"github.com/framecheck/framecheck-go/internal/models"
	"github.com/framecheck/framecheck-go/internal/preview"
)

// Tool selects which analysis variant a session drives.
type Tool string

const (
	ToolAnalysis   Tool = "analysis"
	ToolSimilarity Tool = "similarity"
	ToolCrop       Tool = "crop"
)

// MaxSimilarityFiles caps the similarity tool's batch size.
const MaxSimilarityFiles = 4

// Session is the aggregate root of one tool instance. All state is guarded by
// mu; completion of the in-flight upload is applied under the same lock, with
// a generation counter discarding responses that arrive after a reset or a
// new intake.
type Session struct {
	tool   Tool
	gate   intake.Gate
	client api.Client
	log    logging.Logger

	mu         sync.Mutex
	previews   *preview.Manager
	files      []models.SelectedFile
	handles    []*preview.Handle
	status     Status
	result     models.Result
	failure    *Failure
	generation uint64
}

// Snapshot is a read-only copy of session state for presentation.
type Snapshot struct {
	Tool     Tool
	Status   Status
	Files    []models.SelectedFile
	Previews []string
	Result   models.Result
	Failure  *Failure
}

// New builds an idle session for the given tool. Nothing is shared between
// sessions: each owns its preview manager and selection.
func New(tool Tool, client api.Client, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNopLogger()
	}

	gate := intake.SingleImage()
	if tool == ToolSimilarity {
		gate = intake.MultiImage(MaxSimilarityFiles)
	}

	return &Session{
		tool:     tool,
		gate:     gate,
		client:   client,
		log:      log.With("tool", string(tool)),
		previews: preview.NewManager(),
		status:   StatusIdle,
	}
}

// SelectFiles runs one acceptance event through the intake gate. When at
// least one file is accepted the new batch fully replaces the prior
// selection: old previews are released, fresh ones acquired, status returns
// to idle, and result/error are cleared. An in-flight upload keeps running
// but its response will be discarded as stale.
//
// An event in which every candidate is rejected leaves the session untouched.
// Rejection is silent per the intake contract.
func (s *Session) SelectFiles(ctx context.Context, candidates []models.SelectedFile) int {
	accepted := s.gate.Accept(candidates)
	if len(accepted) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseAllLocked(ctx)

	s.files = accepted
	s.handles = make([]*preview.Handle, 0, len(accepted))
	for i := range accepted {
		s.handles = append(s.handles, s.previews.Acquire(&s.files[i]))
	}

	s.status = StatusIdle
	s.result = nil
	s.failure = nil
	s.generation++

	s.log.Info(ctx, "files selected", "count", len(accepted))
	return len(accepted)
}

// Submit issues the upload for the current selection. The returned channel
// closes when the submission settles (including when a late response is
// discarded as stale). Submit is a no-op when an upload is already in flight
// or no files are selected; the channel is then already closed.
func (s *Session) Submit(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()

	if s.status == StatusUploading {
		s.mu.Unlock()
		s.log.Debug(ctx, "submit ignored: upload in flight")
		close(done)
		return done
	}
	if len(s.files) == 0 {
		s.mu.Unlock()
		s.log.Debug(ctx, "submit ignored: no files selected")
		close(done)
		return done
	}

	s.status = StatusUploading
	s.result = nil
	s.failure = nil
	s.generation++
	gen := s.generation
	files := s.files

	s.mu.Unlock()

	submissionID := uuid.NewString()
	s.log.Info(ctx, "upload started", "submission", submissionID, "files", len(files))

	go func() {
		defer close(done)
		res, err := s.dispatch(ctx, files)
		s.complete(ctx, gen, submissionID, res, err)
	}()

	return done
}

// dispatch issues the one network call for the session's tool variant.
func (s *Session) dispatch(ctx context.Context, files []models.SelectedFile) (models.Result, error) {
	switch s.tool {
	case ToolSimilarity:
		res, err := s.client.FindSimilar(ctx, files)
		if err != nil {
			return nil, err
		}
		return res, nil
	case ToolCrop:
		res, err := s.client.SuggestCrop(ctx, files[0])
		if err != nil {
			return nil, err
		}
		return res, nil
	default:
		res, err := s.client.AnalyzeImage(ctx, files[0])
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

// complete applies a finished upload. Responses from a superseded generation
// are dropped: a reset or new intake has already moved the session on.
func (s *Session) complete(ctx context.Context, gen uint64, submissionID string, res models.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.log.Debug(ctx, "stale response discarded", "submission", submissionID)
		return
	}

	switch {
	case err != nil:
		s.status = StatusFailed
		s.failure = &Failure{Kind: FailureTransport, Message: api.Reason(err)}
		s.result = nil
		s.log.Error(ctx, "upload failed", "submission", submissionID, "error", err)

	case !res.Ok():
		s.status = StatusFailed
		s.failure = &Failure{Kind: FailureApplication, Message: res.FailureMessage()}
		s.result = nil
		s.log.Warn(ctx, "service reported failure", "submission", submissionID, "message", s.failure.Message)

	default:
		s.status = StatusSucceeded
		s.result = res
		s.failure = nil
		s.log.Info(ctx, "upload succeeded", "submission", submissionID)
	}
}

// Reset returns the session to its fresh-mount state: no files, no previews,
// no result, no error, idle. Legal from any state and idempotent; an
// in-flight response arriving afterwards is discarded.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseAllLocked(ctx)
	s.files = nil
	s.handles = nil
	s.status = StatusIdle
	s.result = nil
	s.failure = nil
	s.generation++
}

// Close tears the session down, releasing every held resource. The session
// must not be used afterwards.
func (s *Session) Close(ctx context.Context) {
	s.Reset(ctx)
}

func (s *Session) releaseAllLocked(ctx context.Context) {
	for _, h := range s.handles {
		if err := s.previews.Release(h); err != nil {
			s.log.Error(ctx, "preview release failed", "error", err)
		}
	}
	s.handles = nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]models.SelectedFile, len(s.files))
	copy(files, s.files)

	tokens := make([]string, 0, len(s.handles))
	for _, h := range s.handles {
		tokens = append(tokens, h.Token())
	}

	return Snapshot{
		Tool:     s.tool,
		Status:   s.status,
		Files:    files,
		Previews: tokens,
		Result:   s.result,
		Failure:  s.failure,
	}
}

// LivePreviews reports how many preview handles are currently held. Always
// equal to the number of selected files.
func (s *Session) LivePreviews() int {
	return s.previews.Live()
}
