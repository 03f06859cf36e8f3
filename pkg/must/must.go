// Package must provides helpers for best-effort cleanup operations whose
// failures should be logged rather than propagated, usually because a more
// important error is already being returned.
package must

import (
	"fmt"
	"io"

	"github.com/mutagen-io/statbridge/pkg/logging"
)

// CloseDescriptor closes a raw descriptor using the specified closure function
// and logs a warning if closure fails.
func CloseDescriptor(closer func(int) error, descriptor int, logger *logging.Logger) {
	if err := closer(descriptor); err != nil {
		logger.Warnf("Unable to close descriptor %d: %s", descriptor, err.Error())
	}
}

// Fprint prints to w and logs a warning if the output could not be written
// completely.
func Fprint(w io.Writer, logger *logging.Logger, a ...any) {
	s := fmt.Sprint(a...)
	n, err := fmt.Fprint(w, s)
	if err != nil {
		logger.Warnf("Unable to Fprint '%s'; %s", s, err.Error())
	}
	if n < len(s) {
		logger.Warnf("Unable to Fprint all of '%s'; printed only %d of %d bytes", s, n, len(s))
	}
}

// Succeed logs a warning if err is non-nil, naming the task that failed.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("Unable to succeed at %s; %s", task, err.Error())
	}
}
