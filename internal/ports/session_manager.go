package ports

import "context"

// SessionManager owns the remote store's authorization token. One
// manager exists per remote database and is shared across requests.
type SessionManager interface {
	// Acquire returns a valid token, authenticating lazily and
	// refreshing sessions idle past the inactivity window.
	Acquire(ctx context.Context) (string, error)

	// Invalidate discards the current token without a remote call,
	// used after the store rejects it.
	Invalidate()

	// Shutdown closes the remote session best-effort.
	Shutdown(ctx context.Context)
}
