package testutil

import (
	"context"
	"testing"
	"time"
)

// ContextWithTimeout returns a context bounded by d and cancelled at test cleanup.
func ContextWithTimeout(t testing.TB, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// ContextWithCancel is a cancellable context released at test cleanup
// even when the test never calls cancel.
func ContextWithCancel(t testing.TB) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}
