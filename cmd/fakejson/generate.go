package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/fakejson/internal/config"
	"pkg.jsn.cam/fakejson/internal/logging"
	"pkg.jsn.cam/fakejson/internal/sink"
	"pkg.jsn.cam/fakejson/pkg/fakejson"
)

func runGenerate(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs, f := newFlagSet("generate", stderr, true)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return 2
	}

	cfg, err := loadConfig(fs, f, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := logging.New(stderr, cfg.LogLevel, logging.NewRunID())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := generate(cfg, fakejson.NewFakerSource(cfg.TextMaxChars), stdout, stderr, logger); err != nil {
		logger.Error().Err(err).Msg("generation failed")
		return 1
	}
	return 0
}

func generate(cfg *config.Config, src fakejson.Source, stdout, stderr io.Writer, logger zerolog.Logger) error {
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	compression, err := sink.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("preset", cfg.Preset).
		Stringer("shape", settings.Shape).
		Stringer("policy", settings.Policy).
		Msg("generating dataset")

	opts := fakejson.Options{Policy: settings.Policy}
	if cfg.Progress {
		bar := progressbar.NewOptions64(int64(settings.Shape.Elements),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		opts.OnRecord = func(int) { _ = bar.Add(1) }
	}

	start := time.Now()
	ds, err := fakejson.Assemble(src, settings.Shape, opts)
	if err != nil {
		return err
	}

	out, err := sink.Open(cfg.Output, compression, stdout)
	if err != nil {
		return err
	}
	if err := fakejson.Write(out, ds); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info().
		Int("elements", settings.Shape.Elements).
		Int("fields", settings.Shape.Fields).
		Int("array_len", settings.Shape.ArrayLen).
		Stringer("policy", settings.Policy).
		Str("output", cfg.Output).
		Str("size", out.Summary()).
		Dur("elapsed", time.Since(start)).
		Msg("dataset written")
	return nil
}
