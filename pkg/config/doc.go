// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for optional .env files. Parsed values are cached
// per configuration type, so packages can call Load for the same struct from
// several places without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is. Tests that change the environment call ResetCache
// before loading again.
package config
