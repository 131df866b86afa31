package config

import (
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/joorhq/joor/core/jrror"
)

// ModeVar selects the run mode and therefore the mode-specific .env file.
const ModeVar = "JOOR_MODE"

var (
	cache    sync.Map // reflect.Type -> any (a T value)
	loadOnce sync.Once
	loadMu   sync.Mutex
)

// EnvFiles returns the .env files read for mode, most specific first.
// Development reads .env.local, other modes read .env.<mode>. The plain
// .env file is the shared fallback.
func EnvFiles(mode string) []string {
	switch Mode(mode) {
	case ModeProduction, ModeStaging, ModeTesting:
		return []string{".env." + mode, ".env"}
	default:
		return []string{".env.local", ".env"}
	}
}

// loadEnvFiles reads the .env files for the current mode once. Missing files
// are ignored and variables already set in the process win.
func loadEnvFiles() {
	loadOnce.Do(func() {
		for _, f := range EnvFiles(os.Getenv(ModeVar)) {
			_ = godotenv.Load(f)
		}
	})
}

// Load populates cfg from the environment. The first successful load of a
// type is cached and copied into cfg on later calls.
func Load[T any](cfg *T) error {
	loadEnvFiles()

	key := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return jrror.Wrap(err, jrror.CodeConfigLoad,
			"failed to parse configuration from the environment", jrror.TypePanic,
			jrror.WithDocsPath(docsPath))
	}

	cache.Store(key, fresh)
	*cfg = fresh
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
