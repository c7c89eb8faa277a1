package auth

import "github.com/stockmaster/models"

// Session identifies the acting user for one request. It is resolved from a
// bearer token by the web middleware; nothing in the core reads ambient
// session state.
type Session struct {
	UserID string
	Role   models.Role
}

// Can reports whether the session's role allows the action.
func (s Session) Can(action string) bool {
	return HasPermission(s.Role, action)
}
