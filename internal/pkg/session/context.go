package session

import "context"

type contextKey struct{}

// WithStore returns a copy of ctx carrying store
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext returns the store installed in ctx
func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	return store, ok && store != nil
}

// MustFromContext returns the store installed in ctx and panics when there is none.
// Reaching it without the session middleware is a wiring bug.
func MustFromContext(ctx context.Context) *Store {
	store, ok := FromContext(ctx)
	if !ok {
		panic("session: store used outside of the session middleware")
	}
	return store
}
