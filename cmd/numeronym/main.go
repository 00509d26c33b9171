// Command numeronym prints numeronyms for words and phrases.
//
// Usage:
//
//	numeronym [flags] [text ...]
//	numeronym schema
//
// Each argument is one input; quote phrases to keep them together. With no
// arguments, each line of -file (or stdin) is one input. -follow keeps
// reading -file as it grows.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/randalmurphal/numeronym/config"
	"github.com/randalmurphal/numeronym/linereader"
	"github.com/randalmurphal/numeronym/numeronym"
	"github.com/randalmurphal/numeronym/render"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	format     string
	file       string
	follow     bool
	logLevel   string
	logJSON    bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "schema" {
		return runSchema(stdout, stderr)
	}

	var opts options
	fs := flag.NewFlagSet("numeronym", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&opts.format, "format", "", "output format: text, json, yaml")
	fs.StringVar(&opts.file, "file", "", "read inputs from this file, one per line")
	fs.BoolVar(&opts.follow, "follow", false, "keep reading -file as it grows")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: numeronym [flags] [text ...]")
		fmt.Fprintln(stderr, "       numeronym schema")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "numeronym: %v\n", err)
		return exitError
	}
	logger := cfg.NewLogger(stderr)

	enc := render.NewEncoder(stdout, cfg.Format)
	err = generate(ctx, fs.Args(), opts.file, cfg.Follow, stdin, enc, logger)
	if closeErr := enc.Close(); err == nil {
		err = closeErr
	}

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return exitOK
	case errors.Is(err, errUsage):
		logger.Error("invalid arguments", slog.Any("error", err))
		return exitUsage
	default:
		logger.Error("numeronym failed", slog.Any("error", err))
		return exitError
	}
}

// loadConfig layers explicitly set flags over the loaded config.
func loadConfig(fs *flag.FlagSet, opts options) (*config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = render.Format(opts.format)
		case "follow":
			cfg.Follow = opts.follow
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "log-json":
			cfg.LogJSON = opts.logJSON
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func generate(ctx context.Context, args []string, file string, follow bool, stdin io.Reader, enc *render.Encoder, logger *slog.Logger) error {
	emit := func(input string) error {
		return enc.Encode(numeronym.Analyze(input))
	}

	if len(args) > 0 {
		if file != "" || follow {
			return fmt.Errorf("%w: text arguments cannot be combined with -file or -follow", errUsage)
		}
		for _, arg := range args {
			if err := emit(arg); err != nil {
				return err
			}
		}
		return nil
	}

	if file == "" {
		if follow {
			return fmt.Errorf("%w: -follow requires -file", errUsage)
		}
		logger.Debug("reading stdin")
		return linereader.Each(stdin, emit)
	}

	r, err := linereader.NewReader(file, linereader.WithLogger(logger))
	if err != nil {
		return err
	}
	defer r.Close()

	if !follow {
		lines, err := r.ReadAll()
		if err != nil {
			return err
		}
		logger.Debug("read input file", slog.String("path", file), slog.Int("lines", len(lines)))
		return emitAll(lines, emit)
	}

	// An unterminated last line is held back and finished by the tail.
	lines, offset, err := r.ReadComplete()
	if err != nil {
		return err
	}
	logger.Debug("read input file", slog.String("path", file), slog.Int("lines", len(lines)), slog.Int64("offset", offset))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tail := r.TailFrom(ctx, offset)

	if err := emitAll(lines, emit); err != nil {
		return err
	}

	logger.Debug("following input file", slog.String("path", file))
	for line := range tail {
		if err := emit(line); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func emitAll(lines []string, emit func(string) error) error {
	for _, line := range lines {
		if err := emit(line); err != nil {
			return err
		}
	}
	return nil
}

func runSchema(stdout, stderr io.Writer) int {
	data, err := render.Schema()
	if err != nil {
		fmt.Fprintf(stderr, "numeronym: %v\n", err)
		return exitError
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", data); err != nil {
		return exitError
	}
	return exitOK
}
