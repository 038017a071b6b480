// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
)

// Environment variables read by loadConfig. A .env file in the working
// directory is loaded into the environment first.
const (
	envZScale   = "HFIELD_ZSCALE"
	envLogPath  = "HFIELD_LOG_PATH"
	envLogMaxMB = "HFIELD_LOG_MAX_MB"
)

const (
	defaultZScale   = 255
	defaultLogPath  = "./logs/hfield.log"
	defaultLogMaxMB = 10
)

// config holds the process-wide settings. Subcommand flags override them.
type config struct {
	ZScale   float32 // height of an 8-bit sample of 255
	LogPath  string  // rotating log file, empty disables it
	LogMaxMB int     // rotate after this many megabytes
}

// loadConfig reads the settings through lookup (os.LookupEnv in main).
// Unset variables keep their defaults; a set but empty HFIELD_LOG_PATH
// disables the log file.
func loadConfig(lookup func(string) (string, bool)) (config, error) {
	cfg := config{
		ZScale:   defaultZScale,
		LogPath:  defaultLogPath,
		LogMaxMB: defaultLogMaxMB,
	}

	if v, ok := lookup(envZScale); ok {
		z, err := strconv.ParseFloat(v, 32)
		if err != nil || math.IsNaN(z) || math.IsInf(z, 0) {
			return cfg, fmt.Errorf("%s=%q: not a finite number", envZScale, v)
		}
		cfg.ZScale = float32(z)
	}
	if v, ok := lookup(envLogPath); ok {
		cfg.LogPath = v
	}
	if v, ok := lookup(envLogMaxMB); ok {
		mb, err := strconv.Atoi(v)
		if err != nil || mb < 1 {
			return cfg, fmt.Errorf("%s=%q: want a positive integer", envLogMaxMB, v)
		}
		cfg.LogMaxMB = mb
	}

	return cfg, nil
}
