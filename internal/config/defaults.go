package config

import "time"

const (
	defaultTokenIssuer        = "recipe-share"
	defaultTokenDuration      = time.Hour
	defaultResetTokenDuration = time.Hour
	defaultHTTPAddress        = "localhost:5000"
	defaultPublicURL          = "http://localhost:5000"
	defaultRequestTimeout     = 30 * time.Second
	defaultDBDriver           = "pgx"
	defaultPicturesDir        = "uploads"
	defaultVersion            = "0.0.0-dev"
	defaultAdapterAddress     = "http://localhost:5000"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        defaultTokenIssuer,
			TokenDuration:      defaultTokenDuration,
			ResetTokenDuration: defaultResetTokenDuration,
			PublicURL:          defaultPublicURL,
			Version:            defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Storage: Storage{
			DB:       DB{Driver: defaultDBDriver},
			Pictures: Pictures{Dir: defaultPicturesDir},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
