// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// Startup errors of [NewHandlers]. Both abort the server before it listens.
var (
	errNoHTTPAddress      = errors.New("server HTTP address is not configured")
	errNoIdentityResolver = errors.New("authorization gate has no identity resolver")
)
