package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional YAML file, OURCHAT_* environment variables (including a
// .env file) and finally the flags that were set on fs. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	k := koanf.New(".")

	if err := parseFile(k, configPath(fs)); err != nil {
		return nil, err
	}
	if err := parseEnv(k); err != nil {
		return nil, err
	}
	if err := parseFlags(k, fs); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
