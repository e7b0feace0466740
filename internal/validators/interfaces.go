// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded recipe-share requests before they reach
// the services: registration and login bodies, password-reset payloads,
// recipe drafts and ratings.
//
// Violations are reported as a [*ValidationError] carrying one entry per
// offending JSON field, which the HTTP layer renders as the "errors" array
// of a 400 response.
package validators

import "context"

// Validator checks a request value. Optional scopes switch on extra rules
// for a request type, e.g. [FieldRecipeRequired] when a recipe is created.
type Validator interface {
	Validate(ctx context.Context, request any, scopes ...string) error
}
