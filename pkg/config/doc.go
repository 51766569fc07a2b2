// Package config loads typed configuration structs from environment
// variables.
//
// Values are parsed with caarlos0/env field tags; a .env file in the
// working directory is read once per process as a development convenience.
// Every component defines its own small Config struct next to the code that
// consumes it, and the composition root loads them all at startup:
//
//	var storeCfg tenantstore.Config
//	config.MustLoad(&storeCfg)
//
// MustLoad panics on failure so that misconfiguration prevents startup
// instead of surfacing mid-request.
package config
