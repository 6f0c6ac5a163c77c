package domain

import "time"

// SessionTTL is the fixed lifetime of a session token. The session store
// enforces it; expired tokens are indistinguishable from absent ones.
const SessionTTL = 3600 * time.Second

// Identity is the authenticated-identity snapshot stored against a session
// token at login time. It is not live-synced to the user record.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
