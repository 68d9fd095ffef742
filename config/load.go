// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ChainSafe/moonsuite/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "config"))

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads the TOML configuration file at the path given
// on top of the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	filePath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot find absolute path of %s: %w", path, err)
	}

	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("cannot open config file: %w", err)
	}

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("cannot decode config file %s: %w", filePath, err)
	}

	err = file.Close()
	if err != nil {
		return nil, fmt.Errorf("cannot close config file: %w", err)
	}

	logger.Debugf("loaded configuration from %s", filePath)
	return cfg, nil
}

// Write exports the configuration to a TOML file at the path given.
func Write(path string, cfg *Config) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	const perm = 0o600
	err = os.WriteFile(filepath.Clean(path), raw, perm)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// LookupEnvFunc looks up an environment variable.
type LookupEnvFunc func(key string) (value string, ok bool)

// ApplyEnv overrides configuration values with the
// ENDPOINT, WS_ENDPOINT, LOG and NODE_BINARY environment variables.
// Setting NODE_BINARY makes the suites launch their own node.
func (c *Config) ApplyEnv(lookupEnv LookupEnvFunc) {
	if value, ok := lookupEnv("ENDPOINT"); ok && value != "" {
		c.SetEndpoint(value)
	}

	if value, ok := lookupEnv("WS_ENDPOINT"); ok && value != "" {
		c.Endpoint.WS = value
	}

	if value, ok := lookupEnv("LOG"); ok && value != "" {
		c.Global.LogLvl = value
	}

	if value, ok := lookupEnv("NODE_BINARY"); ok && value != "" {
		c.Node.Binary = value
		c.Node.Start = true
	}
}

// SetEndpoint sets the HTTP endpoint and the websocket
// endpoint derived from it.
func (c *Config) SetEndpoint(httpEndpoint string) {
	c.Endpoint.HTTP = httpEndpoint
	c.Endpoint.WS = wsFromHTTP(httpEndpoint)
}

func wsFromHTTP(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return "wss://" + strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		return "ws://" + strings.TrimPrefix(endpoint, "http://")
	default:
		return endpoint
	}
}

// LocalEndpoints points the endpoints to the node launched locally.
func (c *Config) LocalEndpoints() {
	port := strconv.Itoa(int(c.Node.RPCPort))
	c.Endpoint.HTTP = "http://localhost:" + port
	c.Endpoint.WS = "ws://localhost:" + port
}

// Validate validates the configuration fields.
func (c *Config) Validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("cannot register log level validation: %w", err)
	}

	err = validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		duration, err := time.ParseDuration(fl.Field().String())
		return err == nil && duration > 0
	})
	if err != nil {
		return fmt.Errorf("cannot register duration validation: %w", err)
	}

	err = validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, len(validationErrors))
			for i, fieldErr := range validationErrors {
				messages[i] = fmt.Sprintf("%s fails %s", fieldErr.Namespace(), fieldErr.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return nil
}
