package config

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/kanaize"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Translate  TranslateConfig  `mapstructure:"translate"`
	Input      InputConfig      `mapstructure:"input"`
	LogLevel   string           `mapstructure:"log_level"`
}

type DictionaryConfig struct {
	Mode string `mapstructure:"mode"` // hiragana|katakana
	Path string `mapstructure:"path"` // dictionary file, overrides Mode
}

type TranslateConfig struct {
	Disambiguator string `mapstructure:"disambiguator"`
	Punctuation   string `mapstructure:"punctuation"`
	ShowAmbiguity bool   `mapstructure:"show_ambiguity"`
}

type InputConfig struct {
	Pimsleur bool `mapstructure:"pimsleur"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	tc := kanaize.DefaultConfig()
	return Config{
		Dictionary: DictionaryConfig{
			Mode: "hiragana",
			Path: "",
		},
		Translate: TranslateConfig{
			Disambiguator: string(tc.Disambiguator),
			Punctuation:   tc.Punctuation,
			ShowAmbiguity: tc.ShowAmbiguity,
		},
		Input: InputConfig{
			Pimsleur: false,
		},
		LogLevel: "info",
	}
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"mode":           "dictionary.mode",
	"dict":           "dictionary.path",
	"disambiguator":  "translate.disambiguator",
	"punctuation":    "translate.punctuation",
	"show-ambiguity": "translate.show_ambiguity",
	"pimsleur":       "input.pimsleur",
	"log-level":      "log_level",
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.StringP("mode", "m", defaults.Dictionary.Mode, "Kana mode (hiragana|katakana)")
	fs.String("dict", defaults.Dictionary.Path, "Dictionary file in kanadict format; overrides --mode")
	fs.String("disambiguator", defaults.Translate.Disambiguator, "Character forcing a token boundary")
	fs.String("punctuation", defaults.Translate.Punctuation, "Characters copied to the output unchanged")
	fs.BoolP("show-ambiguity", "a", defaults.Translate.ShowAmbiguity,
		"Show all readings if a romaji sequence maps to several kana")
	fs.Bool("pimsleur", defaults.Input.Pimsleur, "Normalize Pimsleur-style romaji (macrons, full-width letters)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("KANAIZE")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("kanaize")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("dictionary.mode", c.Dictionary.Mode)
	v.SetDefault("dictionary.path", c.Dictionary.Path)
	v.SetDefault("translate.disambiguator", c.Translate.Disambiguator)
	v.SetDefault("translate.punctuation", c.Translate.Punctuation)
	v.SetDefault("translate.show_ambiguity", c.Translate.ShowAmbiguity)
	v.SetDefault("input.pimsleur", c.Input.Pimsleur)
	v.SetDefault("log_level", c.LogLevel)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// TranslatorConfig converts the translation settings for package kanaize.
func (c Config) TranslatorConfig() (kanaize.Config, error) {
	tc := kanaize.Config{
		Punctuation:   c.Translate.Punctuation,
		ShowAmbiguity: c.Translate.ShowAmbiguity,
	}
	d := c.Translate.Disambiguator
	if utf8.RuneCountInString(d) != 1 {
		return tc, fmt.Errorf("disambiguator must be a single character, is %q", d)
	}
	tc.Disambiguator, _ = utf8.DecodeRuneInString(d)
	return tc, nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
