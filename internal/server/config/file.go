package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// parseFile loads the YAML file at path into k. An empty path is a no-op.
//
// Example:
//
//	server:
//	  address: 0.0.0.0:50051
//	database:
//	  host: postgres
//	  pool_size: 20
//	jwt:
//	  secret: s3cr3t
//	  expire: 24h
func parseFile(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	return nil
}
