package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (detect input, all-bases output)

import (
	"os"
	"strconv"
	"strings"
)

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Base names land in the Env*
// fallbacks so any base flag on the command line replaces them instead
// of conflicting with them.
func LoadFromEnv(cfg *Config) {
	if v := envString("INPUT"); v != "" {
		cfg.EnvInput = v
	}
	if v := envString("OUTPUT"); v != "" {
		cfg.EnvOutput = v
	}
	if v := envInt("VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func envInt(key string) int {
	v := envString(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
