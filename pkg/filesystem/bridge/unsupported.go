//go:build !(linux || darwin)

package bridge

import (
	"time"

	"github.com/mutagen-io/statbridge/pkg/logging"
)

// supported indicates whether or not the bridge is implemented on the current
// platform.
const supported = false

// errUnsupported is returned by every operation on unsupported platforms.
var errUnsupported = newNativeFailure("bridge unsupported on this platform")

func probe(_ string) (*Metadata, error) {
	return nil, errUnsupported
}

func canExecute(_ string) bool {
	return false
}

func list(_ string, _ *logging.Logger) ([]DirectoryEntry, int, error) {
	return nil, 0, errUnsupported
}

func readTarget(_ string, _ *logging.Logger) (string, int, error) {
	return "", 0, errUnsupported
}

func createLink(_, _ string) error {
	return errUnsupported
}

func currentUmask() uint32 {
	return 0
}

func setExecutable(_ string, _ bool, _ uint32) error {
	return errUnsupported
}

func setLastModified(_ string, _ time.Time) error {
	return errUnsupported
}
