package config

import (
	"os"
	"strconv"

	"classbench/internal/errors"
	"classbench/internal/simulate"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Simulation SimulationConfig
}

// DatabaseConfig holds database connection settings. An empty URL means
// experiments are kept in memory only.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SimulationConfig holds default benchmark simulation settings
type SimulationConfig struct {
	Seed      int64
	TrainSize int
	TestSize  int
	Mixture   simulate.Config
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Simulation: SimulationConfig{
			Seed:      getEnvInt64("BENCH_SEED", 42),
			TrainSize: getEnvInt("BENCH_TRAIN_SIZE", 10000),
			TestSize:  getEnvInt("BENCH_TEST_SIZE", 10000),
			Mixture:   loadMixture(),
		},
	}

	if config.Simulation.TrainSize <= 0 || config.Simulation.TestSize <= 0 {
		return nil, errors.ConfigInvalid("BENCH_TRAIN_SIZE and BENCH_TEST_SIZE must be positive")
	}
	if err := config.Simulation.Mixture.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation mixture configuration")
	}

	return config, nil
}

func loadMixture() simulate.Config {
	mixture := simulate.DefaultConfig()
	mixture.NegativeMean = getEnvFloat("BENCH_NEGATIVE_MEAN", mixture.NegativeMean)
	mixture.NegativeStd = getEnvFloat("BENCH_NEGATIVE_STD", mixture.NegativeStd)
	mixture.PositiveMean = getEnvFloat("BENCH_POSITIVE_MEAN", mixture.PositiveMean)
	mixture.PositiveStd = getEnvFloat("BENCH_POSITIVE_STD", mixture.PositiveStd)
	mixture.PositiveRate = getEnvFloat("BENCH_POSITIVE_RATE", mixture.PositiveRate)
	return mixture
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
