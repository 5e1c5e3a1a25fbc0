// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PizzaSpecial is a pizza offer from the specials catalog.
//
// ID is generated on the server when the special is created and never
// changes afterwards. BasePrice keeps the exact decimal value; formatting
// for display happens only in response contracts.
type PizzaSpecial struct {
	// ID is the opaque unique identifier of the special.
	ID uuid.UUID `json:"id"`

	// Name is the display name. Never empty for a stored special.
	Name string `json:"name"`

	// BasePrice is the price before toppings, within [MinBasePrice, MaxBasePrice].
	BasePrice decimal.Decimal `json:"basePrice"`

	// Description is an optional marketing text.
	Description string `json:"description"`

	// ImageURL is an optional relative or absolute image reference.
	ImageURL string `json:"imageUrl"`
}

// Allowed range for a special's base price, both ends inclusive.
var (
	MinBasePrice = decimal.NewFromInt(1)
	MaxBasePrice = decimal.NewFromInt(20)
)

// MarshalJSON writes basePrice as a JSON number.
func (p PizzaSpecial) MarshalJSON() ([]byte, error) {
	type plain PizzaSpecial
	return json.Marshal(struct {
		plain
		BasePrice json.Number `json:"basePrice"`
	}{plain(p), priceNumber(p.BasePrice)})
}

// priceNumber renders price as a JSON number. Decoding needs no
// counterpart: decimal.Decimal accepts numbers and quoted strings alike.
func priceNumber(price decimal.Decimal) json.Number {
	return json.Number(price.String())
}

// FormattedBasePrice returns the base price with exactly two decimals.
func (p PizzaSpecial) FormattedBasePrice() string {
	return p.BasePrice.StringFixed(2)
}
