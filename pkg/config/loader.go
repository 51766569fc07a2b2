package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvOnce makes sure the optional .env file is read at most once per
// process, before the first struct is parsed.
var dotenvOnce sync.Once

// Load populates the configuration struct from environment variables using
// `env` field tags.
//
// A .env file in the working directory is loaded on first use; its absence
// is not an error. Missing variables marked required fail the load.
//
// Example:
//
//	type StoreConfig struct {
//		Table string `env:"TENANT_METADATA_TABLE_NAME,required"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is a local development convenience only.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for
// configurations the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
