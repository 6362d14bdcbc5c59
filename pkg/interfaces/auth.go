package interfaces

import "context"

// Session describes the authenticated principal attached to a request.
type Session struct {
	UserID string
	Email  string
	Role   string
}

// AuthProvider exposes the host's session store. The newsroom never manages
// credentials itself; it only asks who is calling and what they may do.
type AuthProvider interface {
	CurrentSession(ctx context.Context) (*Session, error)
	CurrentRole(ctx context.Context) (string, error)
}
