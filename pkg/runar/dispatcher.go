package runar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher resolves "service/action" paths to registered handlers and invokes them
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger

	mu       sync.RWMutex
	services map[string]ServiceRef
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher over registry
func NewDispatcher(registry *Registry, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   zap.NewNop(),
		services: make(map[string]ServiceRef),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddService makes svc addressable under path
func (d *Dispatcher) AddService(path string, svc any) error {
	if path == "" || strings.Contains(path, "/") {
		return fmt.Errorf("%w: service path %q", ErrInvalidPath, path)
	}
	if svc == nil {
		return fmt.Errorf("service %q is nil", path)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.services[path]; exists {
		return fmt.Errorf("service %q is already registered", path)
	}

	ref := NewServiceRef(svc)
	d.services[path] = ref
	d.logger.Debug("service added",
		zap.String("service", path),
		zap.Stringer("type", ref.Type()),
		zap.Int("actions", len(d.registry.ForType(ref.Type()))),
	)
	return nil
}

// Services returns the registered service paths, sorted
func (d *Dispatcher) Services() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.services))
	for name := range d.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Request invokes the action addressed by path ("service/action")
func (d *Dispatcher) Request(ctx context.Context, path string, params Params) (*ServiceResponse, error) {
	service, action, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	return d.Invoke(ctx, service, action, params)
}

// Invoke runs action on the named service
func (d *Dispatcher) Invoke(ctx context.Context, service, action string, params Params) (*ServiceResponse, error) {
	d.mu.RLock()
	ref, ok := d.services[service]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, service)
	}

	desc, ok := d.registry.Lookup(ref.Type(), action)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrActionNotFound, service, action)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc := &RequestContext{
		RequestID: uuid.New(),
		Service:   service,
		Operation: action,
	}
	ctx = WithRequestContext(ctx, rc)

	start := time.Now()
	resp, err := desc.Handler(ctx, ref, action, params)
	fields := []zap.Field{
		zap.String("path", rc.Path()),
		zap.Stringer("request_id", rc.RequestID),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		d.logger.Warn("action failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	d.logger.Debug("action completed", fields...)
	return resp, nil
}

// SplitPath splits "service/action" into its parts. A leading slash is ignored.
func SplitPath(path string) (service, action string, err error) {
	service, action, ok := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !ok || service == "" || action == "" || strings.Contains(action, "/") {
		return "", "", fmt.Errorf("%w: %q (expected service/action)", ErrInvalidPath, path)
	}
	return service, action, nil
}
