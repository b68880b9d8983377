package runar

import (
	"context"
	"fmt"
	"sync"
)

// HandlerFunc is the adapter generated for one action. It receives the
// type-erased service, the request context, the operation name it was
// resolved under and the raw parameter bag.
type HandlerFunc func(ctx context.Context, svc ServiceRef, operation string, params Params) (*ServiceResponse, error)

// Descriptor is the registration record for one action
type Descriptor struct {
	// Name is the operation name the action is addressed by
	Name string

	// ServiceType is the concrete type that owns the action
	ServiceType TypeID

	// Handler invokes the action on a service of ServiceType
	Handler HandlerFunc
}

// Registrar accepts descriptors. Generated RegisterActions functions only
// depend on this interface.
type Registrar interface {
	Register(descriptors ...Descriptor) error
}

type actionKey struct {
	service TypeID
	name    string
}

// Registry is an append-only collection of descriptors indexed by owning
// type and operation name. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	descriptors []Descriptor
	index       map[actionKey]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[actionKey]int),
	}
}

// Register appends descriptors in order. The batch is rejected as a whole if
// any descriptor is incomplete or collides with an existing one.
func (r *Registry) Register(descriptors ...Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[actionKey]bool, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" {
			return fmt.Errorf("descriptor for %s has an empty operation name", d.ServiceType)
		}
		if d.ServiceType.IsZero() {
			return fmt.Errorf("descriptor %q has no service type", d.Name)
		}
		if d.Handler == nil {
			return fmt.Errorf("descriptor %q for %s has no handler", d.Name, d.ServiceType)
		}

		key := actionKey{service: d.ServiceType, name: d.Name}
		if _, exists := r.index[key]; exists || pending[key] {
			return fmt.Errorf("%w: %s on %s", ErrDuplicateAction, d.Name, d.ServiceType)
		}
		pending[key] = true
	}

	for _, d := range descriptors {
		r.index[actionKey{service: d.ServiceType, name: d.Name}] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}
	return nil
}

// Lookup returns the descriptor registered for the service type and operation name
func (r *Registry) Lookup(service TypeID, name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[actionKey{service: service, name: name}]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// ForType returns the descriptors owned by service in registration order
func (r *Registry) ForType(service TypeID) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Descriptor
	for _, d := range r.descriptors {
		if d.ServiceType == service {
			result = append(result, d)
		}
	}
	return result
}

// Descriptors returns a copy of every descriptor in registration order
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Descriptor(nil), r.descriptors...)
}

// Len returns the number of registered descriptors
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.descriptors)
}
