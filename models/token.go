package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of an access token accepted by the API.
//
// Scope follows the OAuth2 convention of a single space-delimited string
// carried in the "scp" claim, e.g. "read write".
type Claims struct {
	jwt.RegisteredClaims

	// Scope holds the granted scopes, space separated.
	Scope string `json:"scp,omitempty"`
}

// Scopes splits the "scp" claim into individual scope names.
// An absent or blank claim yields an empty slice.
func (c *Claims) Scopes() []string {
	return strings.Fields(c.Scope)
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and keeps the decoded [Claims] next to the compact serialized form.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Principal converts the token's claims into the request identity
// attached to a request context.
func (t *Token) Principal() Principal {
	return Principal{
		Subject: t.Claims.Subject,
		Scopes:  t.Claims.Scopes(),
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
