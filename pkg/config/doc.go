// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which loads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct based on `env` and `envDefault` field tags.
//
//	type Config struct {
//		CollectorURL string        `env:"RUM_COLLECTOR_URL,required"`
//		Lifetime     time.Duration `env:"RUM_SESSION_LIFETIME" envDefault:"30m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env.local")); err != nil {
//		return err
//	}
//
// Errors wrap ErrParsingConfig and the underlying env error, so required or
// malformed variables can be reported precisely.
package config
