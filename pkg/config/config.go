package config

// Config is the effective modcontent configuration
type Config struct {
	Scan    Scan    `koanf:"scan" toml:"scan" yaml:"scan"`
	Games   Games   `koanf:"games" toml:"games" yaml:"games"`
	Rules   []Rule  `koanf:"rules" toml:"rules,omitempty" yaml:"rules,omitempty"`
	Tracker Tracker `koanf:"tracker" toml:"tracker" yaml:"tracker"`
	Style   Style   `koanf:"style" toml:"style" yaml:"style"`
}

// Scan tunes directory walking
type Scan struct {
	// Concurrency bounds how many mod folders are walked at once
	Concurrency int `koanf:"concurrency" toml:"concurrency" yaml:"concurrency"`
	// BatchSize caps the entries delivered to the classifier per batch
	BatchSize int `koanf:"batch_size" toml:"batch_size" yaml:"batch_size"`
}

// Games lists the game ids the conditional built-in rules test against
type Games struct {
	ScriptExtender  []string `koanf:"script_extender" toml:"script_extender" yaml:"script_extender"`
	PythonScripting []string `koanf:"python_scripting" toml:"python_scripting" yaml:"python_scripting"`
	DLLPlugins      []string `koanf:"dll_plugins" toml:"dll_plugins" yaml:"dll_plugins"`
	ImageTextures   []string `koanf:"image_textures" toml:"image_textures" yaml:"image_textures"`
}

// Rule is a user-defined extension rule, appended after the built-in rules
type Rule struct {
	Extension    string   `koanf:"extension" toml:"extension" yaml:"extension"`
	Category     string   `koanf:"category" toml:"category" yaml:"category"`
	Games        []string `koanf:"games" toml:"games,omitempty" yaml:"games,omitempty"`
	ExcludeGames []string `koanf:"exclude_games" toml:"exclude_games,omitempty" yaml:"exclude_games,omitempty"`
	ExcludeNames []string `koanf:"exclude_names" toml:"exclude_names,omitempty" yaml:"exclude_names,omitempty"`
}

// Tracker sizes the in-memory mod content tracker
type Tracker struct {
	Capacity int `koanf:"capacity" toml:"capacity" yaml:"capacity"`
}

// Style points at a styles file replacing the built-in colors
type Style struct {
	Path string `koanf:"path" toml:"path" yaml:"path"`
}
