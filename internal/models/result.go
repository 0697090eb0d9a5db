package models

// Result is the capability shared by all three tool payloads: report whether
// the service succeeded, carry an optional failure message, and render a
// one-line success summary.
type Result interface {
	// Ok reports the service-level success flag. A payload with Ok() == false
	// arrived over a healthy transport but describes an application failure.
	Ok() bool

	// FailureMessage returns the service-provided failure description, or ""
	// when none was given.
	FailureMessage() string

	// Summary renders a short human-readable success line.
	Summary() string
}
