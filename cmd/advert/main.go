// Package main provides the CLI entrypoint for advert.
//
// advert reads classified ads from JSON or YAML files and prints each one
// as a colored "<title> | <price> <currency>" line:
//
//	advert [--color-code 33] [--currency $] [--no-color] [--dump] FILE...
//
// Records that fail validation are logged and skipped; the exit status is 1
// when any record or file failed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advert/internal/advert"
	"advert/internal/colorize"
	"advert/internal/config"
	"advert/internal/match"
	"advert/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := config.Flags("advert")
	fs.SetOutput(stderr)

	cfg, files, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	if err != nil {
		fmt.Fprintf(stderr, "advert: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "advert: %v\n", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck

	if len(files) == 0 {
		logger.Error("no input files")
		return 2
	}

	opts := []advert.Option{
		advert.WithColorCode(colorize.Code(cfg.ColorCode)),
		advert.WithCurrency(cfg.Currency),
	}

	failed := false

	for _, path := range files {
		bags, err := source.LoadFile(path)
		if err != nil {
			logger.Error("failed to load adverts", zap.String("file", path), zap.Error(err))
			failed = true

			continue
		}

		logger.Debug("loaded adverts", zap.String("file", path), zap.Int("count", len(bags)))

		for i, b := range bags {
			a, err := advert.FromBag(b, opts...)
			if err != nil {
				fields := []zap.Field{
					zap.String("file", path),
					zap.Int("index", i),
					zap.Error(err),
				}

				if errors.Is(err, advert.ErrMissingField) {
					if hint, ok := match.Suggest(advert.TitleField, b.Keys()); ok {
						fields = append(fields, zap.String("did_you_mean", hint))
					}
				}

				logger.Warn("advert rejected", fields...)

				failed = true

				continue
			}

			if cfg.NoColor {
				fmt.Fprintln(stdout, colorize.Strip(a.String()))
			} else {
				fmt.Fprintln(stdout, a.String()+colorize.Reset)
			}

			if cfg.Dump {
				fmt.Fprint(stdout, b.Dump())
			}
		}
	}

	if failed {
		return 1
	}

	return 0
}

// newLogger builds a console logger writing to w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if lvl > zapcore.DebugLevel {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core).Named("advert"), nil
}
