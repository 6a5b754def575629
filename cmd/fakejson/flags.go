package main

import (
	"flag"
	"io"

	"pkg.jsn.cam/fakejson/internal/config"
)

type cliFlags struct {
	configPath string
	preset     string
	elements   int
	fields     int
	arrayLen   int
	policy     string
	textChars  int
	output     string
	compress   string
	progress   bool
	logLevel   string
}

func newFlagSet(name string, stderr io.Writer, withOutput bool) (*flag.FlagSet, *cliFlags) {
	defaults := config.Default()
	f := &cliFlags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfigFile+")")
	fs.StringVar(&f.preset, "preset", defaults.Preset, "Preset shape: small or large")
	fs.IntVar(&f.elements, "elements", 0, "Number of objects in the top-level array (overrides preset)")
	fs.IntVar(&f.fields, "fields", 0, "Generated name/text pairs per object (overrides preset)")
	fs.IntVar(&f.arrayLen, "array-len", 0, `Length of each "array" value (default: same as -elements)`)
	fs.StringVar(&f.policy, "policy", "", "Record policy: shared or fresh (overrides preset)")
	fs.StringVar(&f.compress, "compress", defaults.Compression, "Compression: none, gzip or zstd")
	fs.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error, disabled")
	if withOutput {
		fs.IntVar(&f.textChars, "text-chars", defaults.TextMaxChars, "Maximum characters per text value")
		fs.StringVar(&f.output, "output", defaults.Output, `Output file path, "-" for stdout`)
		fs.BoolVar(&f.progress, "progress", false, "Show a progress bar on stderr")
	}
	return fs, f
}

// loadConfig layers preset defaults, the config file and explicitly set flags.
func loadConfig(fs *flag.FlagSet, f *cliFlags, getenv func(string) string) (*config.Config, error) {
	cfg := config.Default()

	path := f.configPath
	if path == "" {
		path = getenv(config.EnvConfigFile)
	}
	if path != "" {
		if err := cfg.LoadFromYaml(path); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "preset":
			cfg.Preset = f.preset
		case "elements":
			cfg.Elements = &f.elements
		case "fields":
			cfg.Fields = &f.fields
		case "array-len":
			cfg.ArrayLen = &f.arrayLen
		case "policy":
			cfg.Policy = f.policy
		case "text-chars":
			cfg.TextMaxChars = f.textChars
		case "output":
			cfg.Output = f.output
		case "compress":
			cfg.Compression = f.compress
		case "progress":
			cfg.Progress = f.progress
		case "log-level":
			cfg.LogLevel = f.logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
