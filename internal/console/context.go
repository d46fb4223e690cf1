package console

import "context"

// detach keeps the values of ctx, the correlation ID among them, but drops its
// cancellation so a dispatch can outlive the request that issued it.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
