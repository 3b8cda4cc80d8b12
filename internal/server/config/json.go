package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mlukash/todoshare/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Duration fields accept Go duration strings ("720h").
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, non-empty fields are copied into the runtime
// Config struct.
type JsonConfig struct {
	EndpointAddr          string `json:"endpoint_addr"`
	DatabaseDSN           string `json:"database_dsn"`
	SecretKey             string `json:"secret_key"`
	TokenValidityDuration string `json:"token_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. An unreadable file or invalid JSON
// panics: a config file that was asked for but cannot be used is a startup
// error.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != "" {
		d, err := time.ParseDuration(c.TokenValidityDuration)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
}
