// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading requests, before the service layer is
// involved. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is empty or is not a
	// single JSON document.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidIdentifier is returned when a numeric path parameter such as
	// {id} is missing or not a positive integer.
	ErrInvalidIdentifier = errors.New("invalid identifier in path")

	// ErrInvalidPicture is returned when a multipart request cannot be
	// parsed or its "picture" part cannot be read.
	ErrInvalidPicture = errors.New("invalid picture upload")
)
