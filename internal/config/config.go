package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Quiz   QuizConfig
	Logger LoggerConfig
}

type QuizConfig struct {
	DefaultDifficulty int
	MaxDifficulty     int
	AdvanceDelay      time.Duration
	Seed              uint64
}

type LoggerConfig struct {
	Level  string
	Env    string
	Output string
}

// SetDefaults registers every key so the application runs without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("quiz.default_difficulty", 0)
	v.SetDefault("quiz.max_difficulty", 10)
	v.SetDefault("quiz.advance_delay", "1500ms")
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.output", "stderr")
}

// LoadConfig reads config.yaml (optional), .env (optional) and the environment.
// Flags bound into v before the call take precedence over both.
func LoadConfig(v *viper.Viper) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	SetDefaults(v)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if os.Getenv("ENV") == "test" {
			v.AddConfigPath("../../config")
			v.AddConfigPath("../../")
		} else {
			v.AddConfigPath(".")
			v.AddConfigPath("./config")
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Quiz: QuizConfig{
			DefaultDifficulty: v.GetInt("quiz.default_difficulty"),
			MaxDifficulty:     v.GetInt("quiz.max_difficulty"),
			AdvanceDelay:      v.GetDuration("quiz.advance_delay"),
			Seed:              v.GetUint64("quiz.seed"),
		},
		Logger: LoggerConfig{
			Level:  strings.ToLower(v.GetString("logger.level")),
			Env:    strings.ToLower(v.GetString("logger.env")),
			Output: v.GetString("logger.output"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the quiz cannot run with.
func (c *Config) Validate() error {
	if c.Quiz.MaxDifficulty < 1 {
		return fmt.Errorf("quiz.max_difficulty must be at least 1, got %d", c.Quiz.MaxDifficulty)
	}
	// 10^(L-1) squared has to fit in an int64 product.
	if c.Quiz.MaxDifficulty > 10 {
		return fmt.Errorf("quiz.max_difficulty must be at most 10, got %d", c.Quiz.MaxDifficulty)
	}
	if c.Quiz.DefaultDifficulty < 0 || c.Quiz.DefaultDifficulty > c.Quiz.MaxDifficulty {
		return fmt.Errorf("quiz.default_difficulty must be within [0, %d], got %d", c.Quiz.MaxDifficulty, c.Quiz.DefaultDifficulty)
	}
	if c.Quiz.AdvanceDelay < 0 {
		return fmt.Errorf("quiz.advance_delay must not be negative, got %s", c.Quiz.AdvanceDelay)
	}
	return nil
}
