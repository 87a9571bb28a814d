package fm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

// sessionIdleTimeout is the store's session inactivity window. A token
// idle longer than this is discarded, never reused.
const sessionIdleTimeout = 10 * time.Minute

// Session manages the one outstanding token for a remote database.
// Safe for concurrent use: racing callers single-flight into one
// authentication exchange and all receive the same token.
type Session struct {
	creds  Credentials
	httpc  *http.Client
	clock  ports.Clock
	logger *zap.Logger

	mu           sync.Mutex
	token        string
	lastActivity time.Time

	flight singleflight.Group
}

var _ ports.SessionManager = (*Session)(nil)

type SessionOption func(*Session)

func WithSessionClock(clock ports.Clock) SessionOption {
	return func(s *Session) { s.clock = clock }
}

func WithSessionHTTPClient(httpc *http.Client) SessionOption {
	return func(s *Session) { s.httpc = httpc }
}

func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

func NewSession(creds Credentials, opts ...SessionOption) *Session {
	s := &Session{
		creds:  creds,
		clock:  ports.SystemClock{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.httpc == nil {
		s.httpc = NewHTTPClient(creds)
	}
	return s
}

// Acquire returns a valid token, reusing the current one when it is
// within the inactivity window and refreshing otherwise. The first use
// creates a session lazily.
func (s *Session) Acquire(ctx context.Context) (string, error) {
	if token, ok := s.reuse(); ok {
		return token, nil
	}

	ch := s.flight.DoChan("session", func() (any, error) {
		// Another waiter may have refreshed while this call queued.
		if token, ok := s.reuse(); ok {
			return token, nil
		}

		stale := s.take()
		if stale != "" {
			s.logger.Debug("closing idle session")
			s.closeRemote(context.WithoutCancel(ctx), stale)
		}

		token, err := s.authenticate(ctx)
		if err != nil {
			return "", err
		}

		s.mu.Lock()
		s.token = token
		s.lastActivity = s.clock.Now()
		s.mu.Unlock()

		s.logger.Debug("session created")
		return token, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate discards the current token without a remote call; the
// store has already rejected it.
func (s *Session) Invalidate() {
	s.take()
}

// Shutdown closes the remote session best-effort. It never fails.
func (s *Session) Shutdown(ctx context.Context) {
	if token := s.take(); token != "" {
		s.closeRemote(ctx, token)
	}
}

// reuse returns the current token when it is still fresh, refreshing
// the activity clock.
func (s *Session) reuse() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.token == "" || now.Sub(s.lastActivity) > sessionIdleTimeout {
		return "", false
	}
	s.lastActivity = now
	return s.token, true
}

// take clears and returns whatever token is held.
func (s *Session) take() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := s.token
	s.token = ""
	return token
}

func (s *Session) authenticate(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.creds.BaseURL()+"/sessions", strings.NewReader("{}"))
	if err != nil {
		return "", fmt.Errorf("create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.creds.Username, s.creds.Password)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}
	if env.Response.Token == "" {
		return "", fmt.Errorf("%w: session response missing token", domain.ErrAuthenticationFailed)
	}

	return env.Response.Token, nil
}

// closeRemote deletes a session server-side. Failures are logged and
// ignored; the token is already gone locally.
func (s *Session) closeRemote(ctx context.Context, token string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.creds.BaseURL()+"/sessions/"+token, nil)
	if err != nil {
		return
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		s.logger.Debug("close session failed", zap.Error(err))
		return
	}
	_ = resp.Body.Close()
}
