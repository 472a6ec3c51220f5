package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first call in the
// process also loads a .env file from the working directory if present.
// Results are cached per concrete type: subsequent calls with the same
// type receive the originally loaded value.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env files are fine; real values come from the environment.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[typ]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	cacheMu.Lock()
	// First writer wins so concurrent loaders observe one value.
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
	} else {
		cache[typ] = *cfg
	}
	cacheMu.Unlock()

	return nil
}

// MustLoad is Load but panics on failure. Useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
