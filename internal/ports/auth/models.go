package auth

import "strings"

// Claims representa la información extraída del token.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// Authenticated indica si hay un usuario identificado; los handlers exigen esto antes de tocar datos.
func (c Claims) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}
