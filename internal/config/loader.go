package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "SYNTHSPEC"

// newViper builds a pre-configured Viper instance with the project's standard
// settings: YAML file type, SYNTHSPEC_ env prefix, automatic env binding, and
// a key replacer that maps "." → "_" so that nested keys like "server.port"
// resolve to "SYNTHSPEC_SERVER_PORT".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v)
	return v
}

// registerDefaults declares every config key and its default on the viper
// instance.  AutomaticEnv only resolves environment variables for keys viper
// knows about, so without this the env-only path would see no keys at all and
// SYNTHSPEC_* overrides would be silently ignored.
func registerDefaults(v *viper.Viper) {
	def := NewDefaultConfig()

	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.mode", def.Server.Mode)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", def.Server.ShutdownTimeout)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.addr", def.Cache.Addr)
	v.SetDefault("cache.password", def.Cache.Password)
	v.SetDefault("cache.db", def.Cache.DB)
	v.SetDefault("cache.dial_timeout", def.Cache.DialTimeout)
	v.SetDefault("cache.read_timeout", def.Cache.ReadTimeout)
	v.SetDefault("cache.write_timeout", def.Cache.WriteTimeout)
	v.SetDefault("cache.ttl", def.Cache.TTL)
	v.SetDefault("cache.key_prefix", def.Cache.KeyPrefix)

	v.SetDefault("rate_limit.enabled", def.RateLimit.Enabled)
	v.SetDefault("rate_limit.requests_per_second", def.RateLimit.RequestsPerSecond)
	v.SetDefault("rate_limit.burst", def.RateLimit.Burst)

	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.namespace", def.Metrics.Namespace)
}

// Load reads the YAML file at configPath, merges any SYNTHSPEC_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SYNTHSPEC_* environment
// variables, with no config file required.  This is the preferred loading
// strategy for containerised deployments.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading safe settings such as log level, rate-limit thresholds, and
// cache TTL; callers are responsible for applying only that subset at
// runtime.  If a changed file fails to parse or validate, onChange is not
// called, preventing the application from entering a broken state.
//
// Watch is non-blocking; viper manages the fsnotify goroutine.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; errors are ignored here since callers call Load first.
	_ = v.ReadInConfig()

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
