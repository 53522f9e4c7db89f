// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Command-line flags override individual settings at the boundary; the core
// only ever sees the resolved values.
package config
