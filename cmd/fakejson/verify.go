package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pkg.jsn.cam/fakejson/internal/logging"
	"pkg.jsn.cam/fakejson/internal/sink"
	"pkg.jsn.cam/fakejson/pkg/fakejson"
)

func runVerify(args []string, stdin io.Reader, stderr io.Writer, getenv func(string) string) int {
	fs, f := newFlagSet("verify", stderr, false)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "verify takes at most one path, got %v\n", fs.Args())
		return 2
	}
	path := fs.Arg(0)

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

	settings, err := cfg.Resolve()
	if err != nil {
		logger.Error().Err(err).Msg("verification failed")
		return 1
	}
	compression, err := sink.ParseCompression(cfg.Compression)
	if err != nil {
		logger.Error().Err(err).Msg("verification failed")
		return 1
	}

	in, err := sink.OpenReader(path, compression, stdin)
	if err != nil {
		logger.Error().Err(err).Msg("verification failed")
		return 1
	}
	defer in.Close()

	if err := fakejson.Verify(in, settings.Shape, settings.Policy); err != nil {
		logger.Error().Err(err).Str("input", displayPath(path)).Msg("verification failed")
		return 1
	}

	logger.Info().
		Str("input", displayPath(path)).
		Stringer("shape", settings.Shape).
		Stringer("policy", settings.Policy).
		Msg("document verified")
	return 0
}

func displayPath(path string) string {
	if path == "" {
		return sink.Stdio
	}
	return path
}
