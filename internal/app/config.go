package app

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel string `mapstructure:"log_level"` // zap level name, e.g. "warn"
	Format   string `mapstructure:"format"`    // text, json or yaml
	Addr     string `mapstructure:"addr"`      // listen address for seedphrased
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"log_level": "SEEDPHRASE_LOG_LEVEL",
	"format":    "SEEDPHRASE_FORMAT",
	"addr":      "SEEDPHRASE_ADDR",
}

// LoadConfig reads defaults and environment overrides. The result is not
// validated: callers apply their flags first, then call Validate or
// ValidateServer.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", FormatText)
	v.SetDefault("addr", "127.0.0.1:8080")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the app cannot act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ValidateServer checks only the settings seedphrased uses.
func (c Config) ValidateServer() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("listen address %q: %w", c.Addr, err)
	}
	return nil
}
