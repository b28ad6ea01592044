// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"naschgen/internal/engine"
	"naschgen/internal/output"
)

// StateWriter serializes one state.
type StateWriter func(w io.Writer, st engine.State) error

// Writer registry (format → handler).
var StateWriters = map[string]StateWriter{
	"text": output.WriteText,
	"json": output.WriteJSON,
}

// Formats lists registered format names, sorted. The CLI accepts exactly these.
func Formats() []string {
	out := make([]string, 0, len(StateWriters))
	for k := range StateWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteState dispatches to the writer registered for format.
func WriteState(format string, w io.Writer, st engine.State) error {
	fn, ok := StateWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, st)
}
