// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the recipe-share
// API.
//
// Each invocation runs a single sub-command (login, recipes, rate, ...)
// against the server through [adapter.RecipeAPI] and prints the result as
// indented JSON.
package client
