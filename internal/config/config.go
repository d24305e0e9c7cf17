package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Codec    CodecConfig  `mapstructure:"codec"`
	Output   OutputConfig `mapstructure:"output"`
	LogLevel string       `mapstructure:"log_level"`
}

type CodecConfig struct {
	// Mode is auto, encode or decode.
	Mode string `mapstructure:"mode"`
	// FallbackMode is used in auto mode when the input gives no guess.
	FallbackMode string `mapstructure:"fallback_mode"`
	// Strict turns unconvertible input into a command failure.
	Strict bool `mapstructure:"strict"`
}

type OutputConfig struct {
	Newline bool `mapstructure:"newline"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"mode":          "codec.mode",
	"fallback-mode": "codec.fallback_mode",
	"strict":        "codec.strict",
	"newline":       "output.newline",
	"log-level":     "log_level",
}

func DefaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			Mode:         ModeAuto,
			FallbackMode: ModeDecode,
			Strict:       false,
		},
		Output: OutputConfig{
			Newline: true,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("mode", defaults.Codec.Mode, "Conversion mode (auto|encode|decode)")
	fs.String("fallback-mode", defaults.Codec.FallbackMode, "Mode used by auto when the input gives no guess (encode|decode)")
	fs.Bool("strict", defaults.Codec.Strict, "Fail when the input contains characters that cannot be converted")
	fs.Bool("newline", defaults.Output.Newline, "Terminate output with a newline")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("KANASIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("kanasig")
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

	mode, err := NormalizeMode(cfg.Codec.Mode)
	if err != nil {
		return Config{}, err
	}
	cfg.Codec.Mode = mode

	fallback, err := NormalizeMode(cfg.Codec.FallbackMode)
	if err != nil {
		return Config{}, fmt.Errorf("fallback mode: %w", err)
	}
	if fallback == ModeAuto {
		return Config{}, fmt.Errorf("fallback mode must be %s or %s", ModeEncode, ModeDecode)
	}
	cfg.Codec.FallbackMode = fallback

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("codec.mode", c.Codec.Mode)
	v.SetDefault("codec.fallback_mode", c.Codec.FallbackMode)
	v.SetDefault("codec.strict", c.Codec.Strict)
	v.SetDefault("output.newline", c.Output.Newline)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds every registered flag to its config key. Flags missing
// from fs are skipped so commands may register a subset.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
