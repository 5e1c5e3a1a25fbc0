package models

import "slices"

// Principal is the verified caller of a request.
type Principal struct {
	// Subject is the "sub" claim of the access token.
	Subject string

	// Scopes are the permission grants of the caller.
	Scopes []string
}

// HasScope reports whether the principal was granted scope.
func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}
