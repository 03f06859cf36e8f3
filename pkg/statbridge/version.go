// Package statbridge provides version information for the statbridge module.
package statbridge

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version of statbridge.
	VersionMajor = 0
	// VersionMinor represents the current minor version of statbridge.
	VersionMinor = 3
	// VersionPatch represents the current patch version of statbridge.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the version string. It must
	// not contain spaces. If empty, no tag is appended to the version string.
	VersionTag = ""
)

// Version provides a stringified version of the current statbridge version.
var Version string

// init performs global initialization.
func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}
