package config

// ── Default values ───────────────────────────────────────────────────
//
// Names shared by the CLI, the environment loader and the tests.

const (
	// ProgramName prefixes error messages and usage text.
	ProgramName = "changebase"

	// EnvPrefix is prepended to every supported environment variable.
	EnvPrefix = "CHANGEBASE_"
)
