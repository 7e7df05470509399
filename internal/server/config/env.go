package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read by the server.
const EnvPrefix = "OURCHAT_"

// parseEnv loads .env (if present) and then OURCHAT_* variables into k.
// Sections are separated by a double underscore, so OURCHAT_DATABASE__POOL_SIZE
// sets database.pool_size.
func parseEnv(k *koanf.Koanf) error {
	_ = godotenv.Load()

	provider := env.Provider(EnvPrefix, ".", envKey)
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
