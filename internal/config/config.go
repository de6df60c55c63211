package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nostressdev/signaling/sdp"
)

// Config holds decoder and logging settings for the command line tools.
type Config struct {
	Strict        bool
	MaxLineLength int
	LogLevel      string
	LogFormat     string
}

type fileConfig struct {
	Strict        bool   `toml:"strict"`
	MaxLineLength int    `toml:"max_line_length"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
}

func Default() Config {
	return Config{
		MaxLineLength: sdp.DefaultMaxLineLength,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load sdp config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load sdp config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("max_line_length") {
		cfg.MaxLineLength = raw.MaxLineLength
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(raw.LogFormat))
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", cfg.MaxLineLength)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

// DecoderOptions maps the config onto sdp decoder options.
func (c Config) DecoderOptions() []sdp.DecoderOption {
	return []sdp.DecoderOption{
		sdp.WithStrict(c.Strict),
		sdp.WithMaxLineLength(c.MaxLineLength),
	}
}
