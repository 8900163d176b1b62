// Package config loads modcontent's configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, or $XDG_CONFIG_HOME/modcontent/config.{toml,yaml,yml}
//  3. MODCONTENT_* environment variables, "__" separating key levels
//  4. explicit overrides (command line flags)
//
// The result is decoded into Config with mapstructure.
package config
