// Package session owns the durable token/identity pair the API client
// authenticates with. Exactly two values are held: the opaque bearer
// token and the serialized admin identity. Both are written together on
// login and cleared together on logout or a rejected token.
package session

import "spicytrolly/internal/models"

// Session is the stored state. A zero Session means anonymous.
type Session struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin,omitempty"`
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store persists the session. Implementations make no cross-process
// atomicity guarantee: two concurrent logins race and the last write
// wins.
type Store interface {
	// Get returns the current session, or a zero session when
	// anonymous. Absence is not an error.
	Get() (Session, error)
	// Set replaces the stored session.
	Set(Session) error
	// Clear drops the stored session. It is idempotent and safe to
	// call when already anonymous.
	Clear() error
	Close() error
}
