package domain

// FailureKind classifies why a source produced no usable feed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureTransport covers request construction, network and HTTP-status errors.
	FailureTransport
	// FailureMalformed covers bodies that did not parse as a feed document.
	FailureMalformed
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureMalformed:
		return "malformed"
	default:
		return "none"
	}
}

// RetrievalResult reports one source's outcome within a fetch run. A failed
// source carries the classification and cause instead of aborting the run;
// its article slice stays empty.
type RetrievalResult struct {
	Source   Source
	Articles []Article
	Failure  FailureKind
	Err      error
}

// Failed reports whether the source contributed nothing due to an error.
func (r RetrievalResult) Failed() bool {
	return r.Failure != FailureNone
}
