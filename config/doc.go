// Package config loads and validates KBI job files and KBI_* environment overrides.
package config
