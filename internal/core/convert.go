// Package core is the orchestration layer.  It runs detection and
// conversion for one request and decides between single-base and
// all-bases rendering.
//
// Architecture layers (bottom → top):
//
//	base  →  convert  →  core  →  cmd (CLI)
//
// Nothing in this package performs I/O except Result.Render, which
// writes to the writer it is given.
package core

import (
	"fmt"

	"changebase/internal/base"
	"changebase/internal/convert"
	"changebase/internal/errors"
)

// Request is one conversion as described by the command line.  Input
// and Output may be base.Unspecified: the former triggers detection,
// the latter all-bases mode.
type Request struct {
	Raw     string
	Input   base.Base
	Output  base.Base
	Verbose bool
}

// Entry is one line of all-bases output.
type Entry struct {
	Base    base.Base
	Digits  string
	IsInput bool
}

// Result is the outcome of a successful conversion.  Exactly one of
// Single (explicit output base) or Entries (all-bases mode) is set.
type Result struct {
	Input       base.Base
	Output      base.Base // Unspecified in all-bases mode
	Detected    bool      // Input came from Detect rather than the caller
	Value       convert.Magnitude
	Single      string
	Entries     []Entry
	Description string // only when Request.Verbose
}

// AllBases reports whether r holds one entry per supported base.
func (r *Result) AllBases() bool { return r.Output == base.Unspecified }

// Convert runs the full pipeline for req.
func Convert(req Request) (*Result, error) {
	res := &Result{Input: req.Input, Output: req.Output}

	var digits string
	if req.Input.Valid() {
		digits = base.Strip(req.Raw, req.Input)
	} else {
		res.Input, digits = base.Detect(req.Raw)
		res.Detected = true
	}

	value, err := convert.Parse(digits, res.Input)
	if err != nil {
		return nil, errors.WrapConversion(req.Raw, res.Input, err)
	}
	res.Value = value

	if req.Output.Valid() {
		res.Single = convert.Format(value, req.Output)
	} else {
		res.Output = base.Unspecified
		res.Entries = make([]Entry, 0, len(base.All))
		for _, b := range base.All {
			res.Entries = append(res.Entries, Entry{
				Base:    b,
				Digits:  convert.Format(value, b),
				IsInput: b == res.Input,
			})
		}
	}

	if req.Verbose {
		res.Description = describe(req.Raw, res)
	}
	return res, nil
}

func describe(raw string, res *Result) string {
	if res.AllBases() {
		return fmt.Sprintf("Detected base %s", res.Input.Label())
	}
	return fmt.Sprintf("Converting %s from %s to %s", raw, res.Input.Label(), res.Output.Label())
}
