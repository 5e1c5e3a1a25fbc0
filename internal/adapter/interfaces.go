// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the pizza specials API.
//
// [SpecialsAdapter] hides the REST details from callers such as the CLI.
// Non-2xx answers are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SpecialsAdapter talks to a running pizza specials server.
type SpecialsAdapter interface {
	// SetToken stores the bearer token attached to every catalog request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// List returns the whole catalog.
	List(ctx context.Context) ([]models.PizzaSpecial, error)

	// Get returns one special. An unknown id yields [ErrNotFound].
	Get(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error)

	// Create adds a special and returns the server's answer, including the
	// generated id.
	Create(ctx context.Context, req models.CreateRequest) (models.CreatedResponse, error)

	// Update replaces the mutable fields of the special with id.
	Update(ctx context.Context, id uuid.UUID, req models.UpdateRequest) (models.PizzaSpecial, error)

	// Delete removes the special with id.
	Delete(ctx context.Context, id uuid.UUID) error

	// Version reports what the server is running. No token is needed.
	Version(ctx context.Context) (models.VersionResponse, error)
}
