package domain

import "errors"

// Token errors. Each variant maps to its own 401 message so callers can tell
// apart a missing header from a bad signature from a stale token.
var ErrTokenMissing = errors.New("missing authorization header or token")
var ErrTokenMalformed = errors.New("signature verification failed or token is malformed")
var ErrTokenExpired = errors.New("token has expired")
var ErrTokenNotFresh = errors.New("fresh token required")
var ErrTokenRevoked = errors.New("token has been revoked")

// Claims is the typed identity payload carried by a session token.
// Validated on decode, never trusted as an arbitrary map.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
}
