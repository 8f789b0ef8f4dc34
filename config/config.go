package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	HTTPAddr                string        `mapstructure:"HTTP_ADDR"`
	LogLevel                string        `mapstructure:"LOG_LEVEL"`
	QuestionDBDSN           string        `mapstructure:"QUESTION_DB_DSN"`
	QuestionDBTimeout       time.Duration `mapstructure:"QUESTION_DB_TIMEOUT"`
	StageDelays             []int         `mapstructure:"STAGE_DELAYS_MS"`
	FollowUpCount           int           `mapstructure:"FOLLOW_UP_COUNT"`
	RemoteCacheSize         int           `mapstructure:"REMOTE_CACHE_SIZE"`
	RateLimitMessagesPerMin int           `mapstructure:"RATE_LIMIT_MESSAGES_PER_MIN"`
	RateLimitBurstSize      int           `mapstructure:"RATE_LIMIT_BURST_SIZE"`
}

// StageDelayDurations returns the simulated analysis stage delays. A nil or
// all-zero list disables the simulated latency entirely.
func (c *Config) StageDelayDurations() []time.Duration {
	out := make([]time.Duration, 0, len(c.StageDelays))
	for _, ms := range c.StageDelays {
		if ms > 0 {
			out = append(out, time.Duration(ms)*time.Millisecond)
		}
	}
	return out
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("QUESTION_DB_DSN", "")
	viper.SetDefault("QUESTION_DB_TIMEOUT", 3)
	// analyzing / searching / finding phases
	viper.SetDefault("STAGE_DELAYS_MS", []int{1200, 900, 700})
	viper.SetDefault("FOLLOW_UP_COUNT", 2)
	viper.SetDefault("REMOTE_CACHE_SIZE", 128)
	viper.SetDefault("RATE_LIMIT_MESSAGES_PER_MIN", 20)
	viper.SetDefault("RATE_LIMIT_BURST_SIZE", 5)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds to proper time.Duration
	config.QuestionDBTimeout = config.QuestionDBTimeout * time.Second

	return &config
}
