package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config is everything the demo binary reads from the environment. The
// library packages never touch configuration themselves; callers pass
// values in explicitly.
type Config interface {
	EnvConfig
	OAuthConfig
}

type mainConfig struct {
	EnvVars
	OAuth
}

// New loads the configuration from the environment.
func New() (Config, error) {
	cfg := mainConfig{}
	if err := cleanenv.ReadEnv(&cfg.EnvVars); err != nil {
		return nil, errors.Wrap(err, "[config.New] failed to read environment")
	}
	if err := cleanenv.ReadEnv(&cfg.OAuth); err != nil {
		return nil, errors.Wrap(err, "[config.New] failed to read environment")
	}
	return cfg, nil
}
