// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the catalog rules for pizza specials.
//
// [PizzaSpecialValidator] checks create and update bodies (non-blank name,
// base price within [models.MinBasePrice, models.MaxBasePrice]) and stored
// specials (non-nil id on top of that). Passing field names such as
// [FieldName] limits the check to those fields. Rule violations are
// reported with the sentinel errors of errors.go.
package validators

import "context"

// Validator checks a value against a set of rules, optionally restricted to
// the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
