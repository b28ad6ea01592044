// internal/output/json.go
package output

import (
	"io"

	"naschgen/internal/engine"
	"naschgen/internal/jsonutil"
)

// WriteJSON writes the state as one indented api.StateV1 document.
func WriteJSON(w io.Writer, st engine.State) error {
	return jsonutil.EncodePretty(w, ToAPI(st))
}
