// Package config provides type-safe environment variable loading with
// caching. A .env file is loaded once on first use; struct fields are
// populated from `env` tags via the caarlos0/env library.
//
//	type SessionConfig struct {
//		Adapter  string        `env:"SESSION_ADAPTER" envDefault:"file"`
//		Duration time.Duration `env:"SESSION_DURATION" envDefault:"1h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process; later Load calls for
// the same type return the cached value.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidTarget is returned when Load receives anything but a non-nil
// pointer to a struct.
var ErrInvalidTarget = errors.New("config: target must be a non-nil struct pointer")

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[reflect.Type]any{}
)

// Load populates cfg from the environment, caching the result per type.
func Load(cfg any) error {
	// Missing .env files are fine; real deployments use the environment.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	t := v.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	cache[t] = v.Elem().Interface()
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
