package audit

import (
	"context"

	"github.com/google/uuid"
)

// Decision describes one policy outcome worth recording.
type Decision struct {
	Action      string
	Allowed     bool
	SubjectID   string
	SubjectRole string
	RecruiterID *uuid.UUID
	Rule        string
	Reason      string
	Context     map[string]any
}

// Logger records policy decisions. Implementations must not fail the
// caller's request; errors are returned for logging only.
type Logger interface {
	LogDecision(ctx context.Context, d Decision) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (NoOpLogger) LogDecision(context.Context, Decision) error {
	return nil
}

// RequestInfo is the HTTP metadata attached to audit entries.
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

type requestInfoKey struct{}

func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func RequestInfoFrom(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}
