package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"addr":            "server.address",
	"db-host":         "database.host",
	"db-port":         "database.port",
	"db-user":         "database.username",
	"db-password":     "database.password",
	"db-name":         "database.database",
	"db-pool-size":    "database.pool_size",
	"cache-host":      "cache.host",
	"cache-port":      "cache.port",
	"cache-password":  "cache.password",
	"cache-pool-size": "cache.pool_size",
	"jwt-secret":      "jwt.secret",
	"jwt-expire":      "jwt.expire",
	"metrics-addr":    "metrics.address",
	"log-level":       "log.level",
}

// RegisterFlags defines the server flags on fs.
//
//	-c, --config string        YAML config file
//	-a, --addr string          gRPC bind address (e.g., "0.0.0.0:50051")
//	-s, --jwt-secret string    HMAC secret for tokens
//	-t, --jwt-expire duration  token lifetime
//
// plus --db-*, --cache-*, --metrics-addr and --log-level.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP("config", "c", "", "path to YAML config file")
	fs.StringP("addr", "a", d.Server.Address, "address and port to run server")
	fs.String("db-host", d.Database.Host, "database host")
	fs.Int("db-port", d.Database.Port, "database port")
	fs.String("db-user", d.Database.Username, "database user")
	fs.String("db-password", d.Database.Password, "database password")
	fs.String("db-name", d.Database.Database, "database name")
	fs.Int("db-pool-size", d.Database.PoolSize, "database connection pool size")
	fs.String("cache-host", d.Cache.Host, "cache host")
	fs.Int("cache-port", d.Cache.Port, "cache port")
	fs.String("cache-password", d.Cache.Password, "cache password")
	fs.Int("cache-pool-size", d.Cache.PoolSize, "cache client pool size")
	fs.StringP("jwt-secret", "s", d.JWT.Secret, "token signing secret")
	fs.DurationP("jwt-expire", "t", d.JWT.Expire, "token lifetime")
	fs.String("metrics-addr", d.Metrics.Address, "metrics and health endpoint address, empty to disable")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
}

func configPath(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	path, err := fs.GetString("config")
	if err != nil {
		return ""
	}
	return path
}

// parseFlags merges only the flags that were explicitly set.
func parseFlags(k *koanf.Koanf, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("load flags: %w", err)
	}
	return nil
}
