package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies HMAC-SHA256 signed JWTs whose "scp" claim carries
// the caller's scopes.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience, when set, is required in the "aud" claim.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for subject carrying scopes.
func (a *authService) CreateToken(ctx context.Context, subject string, scopes []string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, subject, scopes, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other validation failure
// (bad signature, wrong issuer or audience, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authorize(ctx context.Context, scope string) error {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok || len(principal.Scopes) == 0 {
		return ErrUnauthorized
	}

	if !principal.HasScope(scope) {
		logger.FromContext(ctx).Warn().
			Str("subject", principal.Subject).
			Str("required_scope", scope).
			Strs("scopes", principal.Scopes).
			Msg("caller lacks required scope")
		return fmt.Errorf("%w: %s", ErrForbidden, scope)
	}

	return nil
}
