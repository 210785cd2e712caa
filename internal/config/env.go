// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every configuration environment variable.
const EnvPrefix = "CONCBENCH_"

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvUint64 returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as uint64, or the default value if
// not set or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSetAny checks if any of the specified flags were explicitly set on
// the command line. Used for aliased flags where either the short or long
// form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides replaces values for flags the user did not set
// explicitly with their environment counterparts, when present.
func applyEnvOverrides(cfg *Config, fs *flag.FlagSet) {
	if !isFlagSetAny(fs, "array-length", "a") {
		cfg.ArrayLength = getEnvInt("ARRAY_LENGTH", cfg.ArrayLength)
	}
	if !isFlagSetAny(fs, "processes", "p") {
		cfg.NumProcesses = getEnvInt("PROCESSES", cfg.NumProcesses)
	}
	if !isFlagSetAny(fs, "threads", "t") {
		cfg.NumThreads = getEnvInt("THREADS", cfg.NumThreads)
	}
	if !isFlagSetAny(fs, "seed", "s") {
		cfg.Seed = getEnvUint64("SEED", cfg.Seed)
	}
	if !isFlagSetAny(fs, "iterations", "i") {
		cfg.Iterations = getEnvInt("ITERATIONS", cfg.Iterations)
	}
	if !isFlagSetAny(fs, "verbose", "v") {
		cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	}
	if !isFlagSetAny(fs, "ipc") {
		cfg.IPC = getEnvString("IPC", cfg.IPC)
	}
	if !isFlagSetAny(fs, "out-dir") {
		cfg.OutDir = getEnvString("OUT_DIR", cfg.OutDir)
	}
	if !isFlagSetAny(fs, "metrics-addr") {
		cfg.MetricsAddr = getEnvString("METRICS_ADDR", cfg.MetricsAddr)
	}
}
