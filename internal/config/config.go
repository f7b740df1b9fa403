// Package config loads composita settings from defaults, a YAML file, a .env file
// and COMPOSITA_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/pkg/adapters/redis"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/factorial"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit path is given. A missing default file is not an error.
const DefaultFile = "composita.yaml"

// Config is the full application configuration.
type Config struct {
	Solver    SolverConfig    `yaml:"solver" mapstructure:"solver"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Redis     RedisConfig     `yaml:"redis" mapstructure:"redis"`
	Factorial FactorialConfig `yaml:"factorial" mapstructure:"factorial"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SolverConfig holds the default run parameters and the budgets.
type SolverConfig struct {
	domain.Params  `yaml:",inline" mapstructure:",squash"`
	MaxDegreeLimit int           `yaml:"max_degree_limit" mapstructure:"max_degree_limit"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// RedisConfig enables the Redis result cache when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" mapstructure:"password"`
	DB       int           `yaml:"db" mapstructure:"db"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Prefix   string        `yaml:"prefix" mapstructure:"prefix"`
}

type FactorialConfig struct {
	Ledger string `yaml:"ledger" mapstructure:"ledger"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Params:         domain.DefaultParams(),
			MaxDegreeLimit: composita.DefaultMaxDegreeLimit,
			Timeout:        0,
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			TTL:    time.Hour,
			Prefix: redis.DefaultPrefix,
		},
		Factorial: FactorialConfig{Ledger: factorial.DefaultLedgerFile},
		Log:       LogConfig{Level: "info"},
	}
}

// envBindings maps environment variables to dotted config keys.
var envBindings = map[string]string{
	"COMPOSITA_A":                "solver.a",
	"COMPOSITA_B":                "solver.b",
	"COMPOSITA_F1":               "solver.f1",
	"COMPOSITA_MAX_DEGREE":       "solver.max_degree",
	"COMPOSITA_SEED":             "solver.seed",
	"COMPOSITA_MAX_DEGREE_LIMIT": "solver.max_degree_limit",
	"COMPOSITA_TIMEOUT":          "solver.timeout",
	"COMPOSITA_PORT":             "server.port",
	"COMPOSITA_REDIS_ADDR":       "redis.addr",
	"COMPOSITA_REDIS_PASSWORD":   "redis.password",
	"COMPOSITA_REDIS_DB":         "redis.db",
	"COMPOSITA_REDIS_TTL":        "redis.ttl",
	"COMPOSITA_LEDGER":           "factorial.ledger",
	"COMPOSITA_LOG_LEVEL":        "log.level",
}

// Load reads configuration from path (or DefaultFile when empty), a .env file in the
// working directory and the process environment.
func Load(path string) (*Config, error) {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup and without reading .env.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	for env, key := range envBindings {
		if v, ok := lookup(env); ok && v != "" {
			setPath(raw, key, v)
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setPath(m map[string]any, dotted, value string) {
	parts := strings.Split(dotted, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
