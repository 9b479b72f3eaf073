package theme

import "context"

type registryKey struct{}

// WithRegistry makes reg reachable from every descendant holding ctx.
func WithRegistry(ctx context.Context, reg *Registry) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, registryKey{}, reg)
}

// Lookup returns the registry mounted in ctx, if any.
func Lookup(ctx context.Context) (*Registry, bool) {
	if ctx == nil {
		return nil, false
	}
	reg, ok := ctx.Value(registryKey{}).(*Registry)
	if !ok || reg == nil {
		return nil, false
	}
	return reg, true
}

// FromContext returns the registry mounted in ctx and panics with
// ErrNotMounted when there is none.
func FromContext(ctx context.Context) *Registry {
	reg, ok := Lookup(ctx)
	if !ok {
		panic(ErrNotMounted)
	}
	return reg
}
