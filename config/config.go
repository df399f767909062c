// Package config loads startup configuration and exposes the live-tunable
// runtime surface. File and environment loading is viper-backed; every key
// has a default so the core runs with no config file at all.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/motion-fighter/parameter"
)

// Config is the startup configuration snapshot
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Tracker TrackerConfig `mapstructure:"tracker"`
	Pool    PoolConfig    `mapstructure:"pool"`
}

// LogConfig controls logger construction
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// TrackerConfig overrides signal-tracker tuning
type TrackerConfig struct {
	MaxTrails     int     `mapstructure:"maxTrails"`
	MaxPoints     int     `mapstructure:"maxPoints"`
	MatchRadiusPx float64 `mapstructure:"matchRadiusPx"`
}

// PoolConfig overrides object-pool tuning
type PoolConfig struct {
	Slots     int     `mapstructure:"slots"`
	SpawnRate float64 `mapstructure:"spawnRate"`
	SpawnCap  int     `mapstructure:"spawnCap"`
	Seed      uint64  `mapstructure:"seed"`
}

// Load reads configuration from an optional config file and the
// MOTION_FIGHTER_* environment, applying defaults for every key.
// A missing file is not an error; a malformed one is
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	v.SetDefault("tracker.maxTrails", parameter.TrackerMaxTrails)
	v.SetDefault("tracker.maxPoints", parameter.TrailMaxPoints)
	v.SetDefault("tracker.matchRadiusPx", parameter.TrailMatchRadiusPx)

	v.SetDefault("pool.slots", parameter.PoolSlots)
	v.SetDefault("pool.spawnRate", parameter.SpawnBaseRate)
	v.SetDefault("pool.spawnCap", parameter.SpawnBaseCap)
	v.SetDefault("pool.seed", 0)

	v.SetConfigName("motion-fighter")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOTION_FIGHTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
