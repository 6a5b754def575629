package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/fakejson/internal/sink"
	"pkg.jsn.cam/fakejson/pkg/fakejson"
)

// EnvConfigFile names a config file when -config is not given.
const EnvConfigFile = "FAKEJSON_CONFIG"

// Config is the on-disk configuration. The shape fields and Policy override
// the chosen preset only when set.
type Config struct {
	Preset       string `yaml:"preset"`
	Elements     *int   `yaml:"elements,omitempty"`
	Fields       *int   `yaml:"fields,omitempty"`
	ArrayLen     *int   `yaml:"array_len,omitempty"`
	Policy       string `yaml:"policy,omitempty"`
	TextMaxChars int    `yaml:"text_max_chars"`
	Output       string `yaml:"output"`
	Compression  string `yaml:"compression"`
	LogLevel     string `yaml:"log_level"`
	Progress     bool   `yaml:"progress"`
}

func Default() *Config {
	return &Config{
		Preset:       fakejson.DefaultPreset,
		TextMaxChars: fakejson.DefaultTextMaxChars,
		Output:       sink.Stdio,
		Compression:  sink.None.String(),
		LogLevel:     "info",
	}
}

// LoadFromYaml merges the file at path over the current values.
func (config *Config) LoadFromYaml(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, config); err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return nil
}

// Resolve applies the overrides to the preset. Overriding the element count
// also moves the "array" length with it unless that is set explicitly too.
func (config *Config) Resolve() (fakejson.Settings, error) {
	settings, err := fakejson.Preset(config.Preset)
	if err != nil {
		return fakejson.Settings{}, err
	}

	if config.Elements != nil {
		settings.Shape.Elements = *config.Elements
		settings.Shape.ArrayLen = *config.Elements
	}
	if config.Fields != nil {
		settings.Shape.Fields = *config.Fields
	}
	if config.ArrayLen != nil {
		settings.Shape.ArrayLen = *config.ArrayLen
	}
	if config.Policy != "" {
		if settings.Policy, err = fakejson.ParsePolicy(config.Policy); err != nil {
			return fakejson.Settings{}, err
		}
	}

	if err := settings.Shape.Validate(); err != nil {
		return fakejson.Settings{}, err
	}
	return settings, nil
}

// Validate checks everything Resolve does plus the output settings.
func (config *Config) Validate() error {
	if _, err := config.Resolve(); err != nil {
		return err
	}
	if config.TextMaxChars <= 0 {
		return fmt.Errorf("text_max_chars must be > 0, got %d", config.TextMaxChars)
	}
	if _, err := sink.ParseCompression(config.Compression); err != nil {
		return err
	}
	return nil
}
