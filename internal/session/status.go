package session

// Status is the explicit state of an upload session.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusUploading Status = "uploading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// FailureKind separates the service saying "no" from the transport breaking.
type FailureKind string

const (
	// FailureApplication: the service answered at the transport level but
	// reported success=false.
	FailureApplication FailureKind = "application"

	// FailureTransport: network error, non-2xx status, or malformed body.
	FailureTransport FailureKind = "transport"
)

// Failure describes the last failed submission.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string { return f.Message }
