// Package config loads the operation script run by collection-demo.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "COLLECTION"

// Op names an operation applied to the collection.
type Op string

const (
	OpAdd      Op = "add"
	OpAddRange Op = "add_range"
	OpInsertAt Op = "insert_at"
	OpRemoveAt Op = "remove_at"
	OpSet      Op = "set"
	OpGet      Op = "get"
	OpExchange Op = "exchange"
	OpClear    Op = "clear"
)

var ErrUnknownOp = errors.New("unknown operation")

// Operation is one scripted step. Index and Other are positions, Other is
// only read by exchange.
type Operation struct {
	Op     Op       `mapstructure:"op"`
	Index  int      `mapstructure:"index"`
	Other  int      `mapstructure:"other"`
	Value  string   `mapstructure:"value"`
	Values []string `mapstructure:"values"`
}

type Config struct {
	LogLevel   string      `mapstructure:"log_level"`
	Initial    []string    `mapstructure:"initial"`
	Operations []Operation `mapstructure:"operations"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads the script at path. Scalar keys can be overridden with
// COLLECTION_ prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", DefaultConfig().LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "could not read config %s", path)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(err, "could not decode config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown operation names. Index bounds are checked when
// the script runs.
func (c *Config) Validate() error {
	for i, op := range c.Operations {
		switch op.Op {
		case OpAdd, OpAddRange, OpInsertAt, OpRemoveAt, OpSet, OpGet, OpExchange, OpClear:
		default:
			return errors.Wrapf(ErrUnknownOp, "operation #%d %q", i, op.Op)
		}
	}

	return nil
}
