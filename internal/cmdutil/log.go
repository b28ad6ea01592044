// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes one "WARN:" line to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnAll writes each message through Warnf.
func WarnAll(dst io.Writer, quiet bool, msgs []string) {
	for _, m := range msgs {
		Warnf(dst, quiet, "%s", m)
	}
}
