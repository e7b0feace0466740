package config

import (
	"fmt"
	"time"
)

// ClientAdapter tells the command-line client where the recipe-share API
// lives.
type ClientAdapter struct {
	BaseURL string
	Timeout time.Duration
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter

	// Token is the session token printed by a previous "login", taken from
	// RECIPES_TOKEN. Empty means the client calls only public endpoints.
	Token string
}

// GetClientConfig assembles the client view from defaults, the ADAPTER_*
// environment and the optional JSON file. Command-line arguments are left to
// the client's sub-commands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder(nil).
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	token, err := sessionTokenFromEnv()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL: cfg.Adapter.HTTPAddress,
			Timeout: cfg.Adapter.RequestTimeout,
		},
		Token: token,
	}

	return clientCfg, clientCfg.validate()
}
