package config

import "time"

// NewDefaultConfig returns a Config populated with the platform defaults.
// The defaults describe a standalone deployment: release-mode HTTP server on
// 8080, JSON logging at info level, metrics on, cache and rate limiting off.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			Enabled:      false,
			Addr:         "localhost:6379",
			DB:           0,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			TTL:          time.Hour,
			KeyPrefix:    "synthspec:",
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 25,
			Burst:             50,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "synthspec",
		},
	}
}

// ApplyDefaults fills any zero-valued field of cfg with its default.
// Boolean feature switches are left as-is: false is a meaningful setting.
func ApplyDefaults(cfg *Config) {
	def := NewDefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = def.Server.Mode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}

	if cfg.Cache.Addr == "" {
		cfg.Cache.Addr = def.Cache.Addr
	}
	if cfg.Cache.DialTimeout == 0 {
		cfg.Cache.DialTimeout = def.Cache.DialTimeout
	}
	if cfg.Cache.ReadTimeout == 0 {
		cfg.Cache.ReadTimeout = def.Cache.ReadTimeout
	}
	if cfg.Cache.WriteTimeout == 0 {
		cfg.Cache.WriteTimeout = def.Cache.WriteTimeout
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = def.Cache.TTL
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = def.Cache.KeyPrefix
	}

	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = def.RateLimit.RequestsPerSecond
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = def.RateLimit.Burst
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = def.Metrics.Namespace
	}
}
