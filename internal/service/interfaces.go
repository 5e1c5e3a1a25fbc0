package service

import (
	"context"

	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SpecialsServiceWrapper

// SpecialsService is the business API of the pizza specials catalog.
type SpecialsService interface {
	ListSpecials(ctx context.Context) ([]models.PizzaSpecial, error)
	GetSpecial(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error)
	CreateSpecial(ctx context.Context, req models.CreateRequest) (models.PizzaSpecial, error)
	UpdateSpecial(ctx context.Context, id uuid.UUID, req models.UpdateRequest) (models.PizzaSpecial, error)
	DeleteSpecial(ctx context.Context, id uuid.UUID) error
	CountSpecials(ctx context.Context) (int, error)
}

// AuthService verifies bearer tokens and answers scope checks for the
// principal attached to a request context.
type AuthService interface {
	CreateToken(ctx context.Context, subject string, scopes []string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authorize reports whether the caller in ctx holds scope. It returns
	// ErrUnauthorized for an anonymous caller or one without any scopes and
	// ErrForbidden when the caller has scopes but not the requested one.
	Authorize(ctx context.Context, scope string) error
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SpecialsServiceWrapper defines middleware composition for SpecialsService.
// Implementations wrap an existing SpecialsService to add behavior such as
// logging or validating.
type SpecialsServiceWrapper interface {
	Wrap(SpecialsService) SpecialsService // returns a decorated SpecialsService applying additional behavior
}
