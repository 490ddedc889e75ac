// Package config defines the runtime configuration for changebase and
// resolves the several ways of naming a base into a single choice.
package config

import (
	"strings"

	"changebase/internal/base"
	"changebase/internal/errors"
)

// Config holds every tuneable for a single changebase invocation.
type Config struct {
	Value string // positional argument

	// ── Input base ───────────────────────────────────────────────────
	Input    string // -i/--input name
	BinInput bool   // --ib
	OctInput bool   // --io
	DecInput bool   // --id
	HexInput bool   // --ih

	// ── Output base ──────────────────────────────────────────────────
	Output    string // -o/--output name; empty → all bases
	BinOutput bool   // --ob
	OctOutput bool   // --oo
	DecOutput bool   // --od
	HexOutput bool   // --oh

	// ── Output ───────────────────────────────────────────────────────
	Verbose int

	// ── Environment fallbacks ────────────────────────────────────────
	// Used only when no flag names a base for that side.
	EnvInput  string
	EnvOutput string

	// Resolved by Validate.
	inputBase  base.Base
	outputBase base.Base
}

// InputBase returns the base resolved by Validate, or base.Unspecified
// when the input base should be detected.
func (c *Config) InputBase() base.Base { return c.inputBase }

// OutputBase returns the base resolved by Validate, or base.Unspecified
// for all-bases mode.
func (c *Config) OutputBase() base.Base { return c.outputBase }

// ── Validation ───────────────────────────────────────────────────────

// AllBases is the output name that explicitly selects all-bases mode,
// overriding an output base taken from the environment.
const AllBases = "all"

// side describes one of the two base designations.
type side struct {
	field     string // flag name: "input" or "output"
	env       string // env variable suffix: "INPUT" or "OUTPUT"
	allowAll  bool   // accepts AllBases
	name      string
	fallback  string
	shorthand [4]bool // in base.All order
}

// Validate checks that at most one input and one output designation is
// active and resolves them.  It does not look at Value.
func (c *Config) Validate() error {
	in, err := side{
		field: "input", env: "INPUT",
		name: c.Input, fallback: c.EnvInput,
		shorthand: [4]bool{c.BinInput, c.OctInput, c.DecInput, c.HexInput},
	}.resolve()
	if err != nil {
		return err
	}
	out, err := side{
		field: "output", env: "OUTPUT", allowAll: true,
		name: c.Output, fallback: c.EnvOutput,
		shorthand: [4]bool{c.BinOutput, c.OctOutput, c.DecOutput, c.HexOutput},
	}.resolve()
	if err != nil {
		return err
	}
	c.inputBase, c.outputBase = in, out
	return nil
}

// resolve turns the name flag plus the shorthand flags into one base.
// Two designations conflict even when they agree.  The env fallback is
// consulted only when no flag is active.
func (s side) resolve() (base.Base, error) {
	var active []string
	chosen := base.Unspecified

	name, fromEnv := s.name, false
	if name == "" && (s.shorthand == [4]bool{}) {
		name, fromEnv = s.fallback, s.fallback != ""
	}
	if name != "" {
		b, ok := base.Parse(name)
		switch {
		case ok:
			chosen = b
		case s.allowAll && strings.EqualFold(strings.TrimSpace(name), AllBases):
			chosen = base.Unspecified
		default:
			return base.Unspecified, s.unknown(name, fromEnv)
		}
		active = append(active, "--"+s.field)
	}
	for i, on := range s.shorthand {
		if on {
			chosen = base.All[i]
			active = append(active, "--"+s.field[:1]+base.All[i].Short()[:1])
		}
	}

	if len(active) > 1 {
		return base.Unspecified, &errors.ConfigError{
			Field:   s.field,
			Message: "conflicting base flags " + strings.Join(active, ", "),
			Hint:    "give at most one " + s.field + " base",
			Err:     errors.ErrConflictingBaseFlags,
		}
	}
	return chosen, nil
}

func (s side) unknown(name string, fromEnv bool) error {
	names := baseNames()
	if s.allowAll {
		names += ", " + AllBases
	}
	ce := &errors.ConfigError{
		Field:   s.field,
		Value:   name,
		Message: "unknown base",
		Hint:    "use one of " + names,
		Err:     errors.ErrUnknownBase,
	}
	if fromEnv {
		ce.Field, ce.Env = EnvPrefix+s.env, true
	}
	return ce
}

func baseNames() string {
	names := make([]string, 0, len(base.All))
	for _, b := range base.All {
		names = append(names, b.Short())
	}
	return strings.Join(names, ", ")
}
