package config

import (
	"fmt"

	"colored-cube/internal/env"
)

// Report lists what Startup did besides building the config.
type Report struct {
	EnvKeys  []string // variables set from the env file
	Warnings []string
}

// Startup loads envFile into the environment, reads the config file named by Path, and applies
// environment overrides. Problems never stop startup: each one is reported as a warning and the
// affected settings keep their defaults.
func Startup(envFile string) (Config, Report) {
	var r Report
	keys, err := env.Load(envFile)
	r.EnvKeys = keys
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("env %s: %v", envFile, err))
	}
	cfg, err := Load(Path())
	if err != nil {
		r.Warnings = append(r.Warnings, err.Error())
	}
	if err := cfg.ApplyEnv(); err != nil {
		r.Warnings = append(r.Warnings, err.Error())
	}
	return cfg, r
}
