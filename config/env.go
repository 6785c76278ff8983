package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "KBI"

// Env holds the settings taken from the environment.
type Env struct {
	Workers   int    `envconfig:"WORKERS"`
	OutputDir string `envconfig:"OUTPUT_DIR"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadEnv reads KBI_WORKERS, KBI_OUTPUT_DIR and KBI_LOG_LEVEL.
func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Env{}, fmt.Errorf("load env: %w", err)
	}
	if e.Workers < 0 {
		return Env{}, fmt.Errorf("%s_WORKERS=%d: %w", EnvPrefix, e.Workers, ErrInvalidJob)
	}
	return e, nil
}

// Apply overrides the job's run settings with the non-zero fields of e.
func (e Env) Apply(j *Job) {
	if e.Workers > 0 {
		j.Workers = e.Workers
	}
	if e.OutputDir != "" {
		j.OutputDir = e.OutputDir
	}
}
