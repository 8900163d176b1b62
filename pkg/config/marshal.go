package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/modcontent/pkg/errors"
)

// Marshal renders a configuration as TOML, in the shape the user file accepts
func Marshal(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
