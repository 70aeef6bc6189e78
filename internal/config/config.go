// SPDX-License-Identifier: MIT

// Package config loads the training driver settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLayout    = "LVNET_LAYOUT"
	EnvEpochs    = "LVNET_EPOCHS"
	EnvRate      = "LVNET_RATE"
	EnvReport    = "LVNET_REPORT"
	EnvSeed      = "LVNET_SEED"
	EnvWeightMin = "LVNET_WEIGHT_MIN"
	EnvWeightMax = "LVNET_WEIGHT_MAX"
	EnvOut       = "LVNET_OUT"
)

// Names lists every variable Load reads.
func Names() []string {
	return []string{EnvLayout, EnvEpochs, EnvRate, EnvReport, EnvSeed, EnvWeightMin, EnvWeightMax, EnvOut}
}

const (
	envFileName = ".env"
	maxEnvDepth = 5
)

// ErrInvalidValue indicates an environment variable that does not parse.
var ErrInvalidValue = errors.New("config: invalid value")

// TrainConfig holds the settings of a training run.
type TrainConfig struct {
	Layout       string  // layout descriptor, e.g. "2, 3, 1"
	Epochs       int     // number of Train calls
	LearningRate float64 // gradient step scale
	ReportEvery  int     // log the loss every N epochs; 0 disables
	Seed         int64   // 0 means seed from the wall clock
	WeightMin    float64
	WeightMax    float64
	OutPath      string // where to save the trained weights; empty skips saving
}

// Default returns the settings of the classic XOR run.
func Default() TrainConfig {
	return TrainConfig{
		Layout:       "2, 3, 1",
		Epochs:       100000,
		LearningRate: 1.0,
		ReportEvery:  10000,
		WeightMin:    -3,
		WeightMax:    3,
	}
}

// Load returns Default overridden by LVNET_* environment variables. When
// envFile is empty a .env file is searched in the working directory and up
// to four parents; otherwise envFile must exist. Variables already set in the
// process environment win over the file.
func Load(envFile string) (*TrainConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	} else if dir, err := os.Getwd(); err == nil {
		_ = loadEnvFileFrom(dir)
	}

	cfg := Default()
	if v := os.Getenv(EnvLayout); v != "" {
		cfg.Layout = v
	}
	if v := os.Getenv(EnvOut); v != "" {
		cfg.OutPath = v
	}

	var err error
	if cfg.Epochs, err = intVar(EnvEpochs, cfg.Epochs); err != nil {
		return nil, err
	}
	if cfg.ReportEvery, err = intVar(EnvReport, cfg.ReportEvery); err != nil {
		return nil, err
	}
	if cfg.LearningRate, err = floatVar(EnvRate, cfg.LearningRate); err != nil {
		return nil, err
	}
	if cfg.WeightMin, err = floatVar(EnvWeightMin, cfg.WeightMin); err != nil {
		return nil, err
	}
	if cfg.WeightMax, err = floatVar(EnvWeightMax, cfg.WeightMax); err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidValue)
		}
	}

	return &cfg, nil
}

// loadEnvFileFrom walks up from dir until it finds a .env file and loads it.
func loadEnvFileFrom(dir string) error {
	for i := 0; i < maxEnvDepth; i++ {
		envPath := filepath.Join(dir, envFileName)
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}

func intVar(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, v, ErrInvalidValue)
	}

	return n, nil
}

func floatVar(name string, def float64) (float64, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, v, ErrInvalidValue)
	}

	return f, nil
}
