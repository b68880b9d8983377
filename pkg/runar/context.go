package runar

import (
	"context"

	"github.com/google/uuid"
)

// RequestContext describes the request an action is serving
type RequestContext struct {
	RequestID uuid.UUID
	Service   string
	Operation string
}

// Path returns the "service/operation" path of the request
func (rc *RequestContext) Path() string {
	return rc.Service + "/" + rc.Operation
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom returns the RequestContext attached by the dispatcher, if any
func RequestContextFrom(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}
