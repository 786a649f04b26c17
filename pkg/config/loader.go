package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` struct tags. The
// default .env file in the working directory is read once per process if it
// exists. Each configuration type is parsed once; later calls for the same
// type are served from the cache.
//
// Example:
//
//	type ServiceConfig struct {
//		Name     string `env:"APP_NAME" envDefault:"inappdetect"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	typeName := typeNameOf[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[typeName]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[typeName] = parsed
	*v = parsed

	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are not overwritten.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load re-parses
// the environment.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func typeNameOf[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
