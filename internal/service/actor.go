package service

import "context"

type actorKey struct{}

// WithActor records the authenticated account id on the request context.
func WithActor(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, actorKey{}, accountID)
}

// ActorFromContext returns the authenticated account id, or nil for
// anonymous requests.
func ActorFromContext(ctx context.Context) *int64 {
	if id, ok := ctx.Value(actorKey{}).(int64); ok {
		return &id
	}
	return nil
}
