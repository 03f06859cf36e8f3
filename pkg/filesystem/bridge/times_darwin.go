package bridge

import (
	"golang.org/x/sys/unix"
)

// extractTimes is a convenience function for extracting the access,
// modification, and change time specifications from a Stat_t structure.
func extractTimes(stat *unix.Stat_t) (access, modification, change unix.Timespec) {
	return stat.Atimespec, stat.Mtimespec, stat.Ctimespec
}
