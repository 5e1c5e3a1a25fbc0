package models

import "github.com/google/uuid"

// CreatedResponse is returned with 201 Created after a special is added.
// BasePrice is a fixed two-decimal text meant for display only.
type CreatedResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BasePrice   string    `json:"basePrice"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
}

// ErrorResponse is the body of every error answer produced by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
