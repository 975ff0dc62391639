// Package config loads the advert command settings from defaults, an
// optional config file, ADVERT_* environment variables and flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides (ADVERT_COLOR_CODE, ...).
const EnvPrefix = "ADVERT"

const (
	keyColorCode = "color_code"
	keyCurrency  = "currency"
	keyLogLevel  = "log_level"
	keyNoColor   = "no_color"
	keyDump      = "dump"
)

// Config holds the settings of the advert command.
type Config struct {
	ColorCode int    `mapstructure:"color_code" validate:"min=0,max=107"`
	Currency  string `mapstructure:"currency" validate:"required"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	NoColor   bool   `mapstructure:"no_color"`
	Dump      bool   `mapstructure:"dump"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ColorCode: 32,
		Currency:  "₽",
		LogLevel:  "info",
	}
}

var validate = validator.New()

// Flags returns the flag set understood by Load.
func Flags(name string) *pflag.FlagSet {
	d := Default()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML, JSON or TOML config file")
	fs.Int("color-code", d.ColorCode, "terminal color code used for adverts")
	fs.String("currency", d.Currency, "currency symbol shown after the price")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.Bool("no-color", d.NoColor, "print adverts without color")
	fs.Bool("dump", d.Dump, "dump the projected attributes of every advert")

	return fs
}

// Load parses args with fs and resolves the settings. It returns the
// remaining positional arguments.
func Load(fs *pflag.FlagSet, args []string) (*Config, []string, error) {
	err := fs.Parse(args)
	if err != nil {
		return nil, nil, err
	}

	v := viper.New()

	d := Default()
	v.SetDefault(keyColorCode, d.ColorCode)
	v.SetDefault(keyCurrency, d.Currency)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyNoColor, d.NoColor)
	v.SetDefault(keyDump, d.Dump)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		keyColorCode: "color-code",
		keyCurrency:  "currency",
		keyLogLevel:  "log-level",
		keyNoColor:   "no-color",
		keyDump:      "dump",
	}

	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}

		err = v.BindPFlag(key, f)
		if err != nil {
			return nil, nil, fmt.Errorf("v.BindPFlag(%s): %w", flag, err)
		}
	}

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())

		err = v.ReadInConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	cfg := new(Config)

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	err = Validate(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

// Validate checks cfg against its validation tags.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
