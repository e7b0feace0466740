// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Sections are prefixed
// through `envPrefix`: the token sign key is APP_TOKEN_SIGN_KEY, the DSN is
// STORAGE_DB_DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

type clientSession struct {
	Token string `env:"RECIPES_TOKEN"`
}

// sessionTokenFromEnv returns the client's saved session token, "" when
// RECIPES_TOKEN is unset.
func sessionTokenFromEnv() (string, error) {
	session, err := env.ParseAs[clientSession]()
	if err != nil {
		return "", fmt.Errorf("error reading session token: %w", err)
	}

	return session.Token, nil
}
