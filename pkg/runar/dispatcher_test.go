package runar

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *greeter) {
	t.Helper()

	registry := NewRegistry()
	require.NoError(t, registry.Register(greeterDescriptor("greet")))

	d := NewDispatcher(registry, WithLogger(zap.NewNop()))
	g := &greeter{greeting: "hello"}
	require.NoError(t, d.AddService("greeter", g))
	return d, g
}

func TestDispatcher_Request(t *testing.T) {
	d, g := newTestDispatcher(t)

	resp, err := d.Request(context.Background(), "greeter/greet", Params{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello, ada", resp.Data)
	assert.Equal(t, "Operation succeeded", resp.Message)
	assert.Equal(t, 1, g.calls)
}

func TestDispatcher_RequestErrors(t *testing.T) {
	d, g := newTestDispatcher(t)
	ctx := context.Background()

	_, err := d.Request(ctx, "missing/greet", nil)
	assert.True(t, errors.Is(err, ErrServiceNotFound))

	_, err = d.Request(ctx, "greeter/missing", nil)
	assert.True(t, errors.Is(err, ErrActionNotFound))

	_, err = d.Request(ctx, "greeter", nil)
	assert.True(t, errors.Is(err, ErrInvalidPath))

	_, err = d.Request(ctx, "greeter/greet", Params{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingParameter))
	assert.Contains(t, err.Error(), "Error executing greet")
	assert.Equal(t, 1, g.calls)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = d.Request(cancelled, "greeter/greet", Params{"name": "ada"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, g.calls)
}

func TestDispatcher_AttachesRequestContext(t *testing.T) {
	registry := NewRegistry()
	var seen *RequestContext
	require.NoError(t, registry.Register(Descriptor{
		Name:        "inspect",
		ServiceType: TypeOf[*other](),
		Handler: func(ctx context.Context, svc ServiceRef, operation string, params Params) (*ServiceResponse, error) {
			rc, ok := RequestContextFrom(ctx)
			if !ok {
				return nil, errors.New("no request context")
			}
			seen = rc
			return Success("ok", nil), nil
		},
	}))

	d := NewDispatcher(registry)
	require.NoError(t, d.AddService("other", &other{}))

	_, err := d.Request(context.Background(), "/other/inspect", nil)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "other/inspect", seen.Path())
	assert.NotEqual(t, [16]byte{}, [16]byte(seen.RequestID))
}

func TestDispatcher_AddService(t *testing.T) {
	d, _ := newTestDispatcher(t)

	assert.Error(t, d.AddService("greeter", &greeter{}))
	assert.Error(t, d.AddService("", &greeter{}))
	assert.Error(t, d.AddService("a/b", &greeter{}))
	assert.Error(t, d.AddService("nil", nil))

	require.NoError(t, d.AddService("another", &other{}))
	assert.Equal(t, []string{"another", "greeter"}, d.Services())
}

func TestDispatcher_Concurrent(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Descriptor{
		Name:        "echo",
		ServiceType: TypeOf[*other](),
		Handler: func(ctx context.Context, svc ServiceRef, operation string, params Params) (*ServiceResponse, error) {
			return Success("ok", params["n"]), nil
		},
	}))
	d := NewDispatcher(registry)
	require.NoError(t, d.AddService("other", &other{}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := d.Request(context.Background(), "other/echo", Params{"n": n})
			assert.NoError(t, err)
			assert.Equal(t, n, resp.Data)
		}(i)
	}
	wg.Wait()
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path    string
		service string
		action  string
		wantErr bool
	}{
		{path: "users/get_user", service: "users", action: "get_user"},
		{path: "/users/get_user", service: "users", action: "get_user"},
		{path: "users", wantErr: true},
		{path: "users/", wantErr: true},
		{path: "/get_user", wantErr: true},
		{path: "a/b/c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			service, action, err := SplitPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.service, service)
			assert.Equal(t, tt.action, action)
		})
	}
}
