// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateRequest is the request body for POST /.
// It carries no identifier; the server assigns one.
type CreateRequest struct {
	// Name is required.
	Name string `json:"name"`

	// BasePrice must be within [MinBasePrice, MaxBasePrice].
	BasePrice decimal.Decimal `json:"basePrice"`

	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateRequest is the request body for PUT /{id}.
// It replaces every mutable field of an existing special.
type UpdateRequest struct {
	// Name is required.
	Name string `json:"name"`

	// BasePrice must be within [MinBasePrice, MaxBasePrice].
	BasePrice decimal.Decimal `json:"basePrice"`

	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// MarshalJSON writes basePrice as a JSON number.
func (r CreateRequest) MarshalJSON() ([]byte, error) {
	type plain CreateRequest
	return json.Marshal(struct {
		plain
		BasePrice json.Number `json:"basePrice"`
	}{plain(r), priceNumber(r.BasePrice)})
}

// MarshalJSON writes basePrice as a JSON number.
func (r UpdateRequest) MarshalJSON() ([]byte, error) {
	type plain UpdateRequest
	return json.Marshal(struct {
		plain
		BasePrice json.Number `json:"basePrice"`
	}{plain(r), priceNumber(r.BasePrice)})
}
