package core

import (
	"fmt"
	"io"
	"strings"
)

// InputMarker is appended to the all-bases line of the input base.
const InputMarker = " *"

// Render writes r in its command-line form: the bare digit string in
// single-base mode, or one "<short>: <digits>" line per base with the
// input base marked.  The description is not written; printing it is
// the caller's choice.
func (r *Result) Render(w io.Writer) error {
	if !r.AllBases() {
		_, err := fmt.Fprintln(w, r.Single)
		return err
	}
	for _, e := range r.Entries {
		marker := ""
		if e.IsInput {
			marker = InputMarker
		}
		if _, err := fmt.Fprintf(w, "%s: %s%s\n", e.Base.Short(), e.Digits, marker); err != nil {
			return err
		}
	}
	return nil
}

// String returns what Render would write.
func (r *Result) String() string {
	var sb strings.Builder
	_ = r.Render(&sb)
	return sb.String()
}
