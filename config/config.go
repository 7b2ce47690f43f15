package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Study planner specifics
	Planner PlannerConfig
	Scoring ScoringConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig bounds the in-memory session store and the request rate.
type PlannerConfig struct {
	SessionCapacity int
	RateLimitPerMin int
}

// ScoringConfig exposes the formula constants. The defaults reproduce the
// production formulas; override only for experiments.
type ScoringConfig struct {
	BreakBase        float64
	TotalScale       float64
	RangeLow         float64
	RangeHigh        float64
	CapacityWeight   float64
	MinDeadlineHours float64
	CrunchThreshold  float64
	RelaxedThreshold float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Planner.SessionCapacity = viper.GetInt("planner.session_capacity")
	cfg.Planner.RateLimitPerMin = viper.GetInt("planner.rate_limit_per_min")

	cfg.Scoring.BreakBase = viper.GetFloat64("scoring.break_base")
	cfg.Scoring.TotalScale = viper.GetFloat64("scoring.total_scale")
	cfg.Scoring.RangeLow = viper.GetFloat64("scoring.range_low")
	cfg.Scoring.RangeHigh = viper.GetFloat64("scoring.range_high")
	cfg.Scoring.CapacityWeight = viper.GetFloat64("scoring.capacity_weight")
	cfg.Scoring.MinDeadlineHours = viper.GetFloat64("scoring.min_deadline_hours")
	cfg.Scoring.CrunchThreshold = viper.GetFloat64("scoring.crunch_threshold")
	cfg.Scoring.RelaxedThreshold = viper.GetFloat64("scoring.relaxed_threshold")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.session_capacity", 1024)
	viper.SetDefault("planner.rate_limit_per_min", 120)

	// Canonical formula constants.
	viper.SetDefault("scoring.break_base", 0.35)
	viper.SetDefault("scoring.total_scale", 0.75)
	viper.SetDefault("scoring.range_low", 0.75)
	viper.SetDefault("scoring.range_high", 1.15)
	viper.SetDefault("scoring.capacity_weight", 1.5)
	viper.SetDefault("scoring.min_deadline_hours", 0.1)
	viper.SetDefault("scoring.crunch_threshold", 75)
	viper.SetDefault("scoring.relaxed_threshold", 25)
}

func validate(cfg *Config) error {
	if cfg.Planner.SessionCapacity <= 0 {
		return fmt.Errorf("planner.session_capacity must be positive, got %d", cfg.Planner.SessionCapacity)
	}
	if cfg.Scoring.MinDeadlineHours <= 0 {
		return fmt.Errorf("scoring.min_deadline_hours must be positive, got %v", cfg.Scoring.MinDeadlineHours)
	}
	if cfg.Scoring.RelaxedThreshold >= cfg.Scoring.CrunchThreshold {
		return fmt.Errorf("scoring.relaxed_threshold %v must be below crunch_threshold %v",
			cfg.Scoring.RelaxedThreshold, cfg.Scoring.CrunchThreshold)
	}
	return nil
}
