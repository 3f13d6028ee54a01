// Package config holds the run time options of the lhash tool and the
// logging built on them.
package config

import (
	"context"
	"strings"

	"github.com/lhash/lhash/hash"
)

// ConfigInfo is the run time configuration
type ConfigInfo struct {
	LogLevel    LogLevel
	UseJSONLog  bool
	Encoding    hash.Encoding // how checksums are printed
	Concurrency int           // inputs hashed in parallel
}

// NewConfig creates a new config with everything set to the default
// value.
func NewConfig() *ConfigInfo {
	c := new(ConfigInfo)

	// Set any values which aren't the zero for the type
	c.LogLevel = LogLevelNotice
	c.Encoding = hash.Hex
	c.Concurrency = 4

	return c
}

type configContextKeyType struct{}

// Context key for config
var configContextKey = configContextKeyType{}

// global config, used when the context carries none
var globalConfig = NewConfig()

// GetConfig returns the global or context sensitive context
func GetConfig(ctx context.Context) *ConfigInfo {
	if ctx == nil {
		return globalConfig
	}
	c := ctx.Value(configContextKey)
	if c == nil {
		return globalConfig
	}
	return c.(*ConfigInfo)
}

// AddConfig returns a mutable config structure based on a shallow
// copy of that found in ctx and returns a new context with that added
// to it.
func AddConfig(ctx context.Context) (context.Context, *ConfigInfo) {
	c := GetConfig(ctx)
	cCopy := new(ConfigInfo)
	*cCopy = *c
	newCtx := context.WithValue(ctx, configContextKey, cCopy)
	return newCtx, cCopy
}

// OptionToEnv converts an option name, e.g. "log-level" into an
// environment name "LHASH_LOG_LEVEL"
func OptionToEnv(name string) string {
	return "LHASH_" + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}
