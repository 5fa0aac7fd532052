// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env struct tags.
// Scoring parameters (keyword sets, weights, thresholds) have code defaults and
// are overridable per field.
package config
