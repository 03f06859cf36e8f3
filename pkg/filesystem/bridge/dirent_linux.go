package bridge

import (
	"bytes"
	"errors"

	"golang.org/x/sys/unix"
)

// direntName extracts the name from a raw directory record. Linux records
// don't carry a name length, so the name extends to the first null byte.
func direntName(record []byte) []byte {
	name := record[direntNameOffset:]
	if index := bytes.IndexByte(name, 0); index >= 0 {
		return name[:index]
	}
	return name
}

// statfsRetryingOnEINTR is a wrapper around the statfs system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func statfsRetryingOnEINTR(path string, stats *unix.Statfs_t) error {
	for {
		err := unix.Statfs(path, stats)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// maximumNameLength returns the maximum entry name length for the filesystem
// containing path.
func maximumNameLength(path string) (int, error) {
	var stats unix.Statfs_t
	if err := statfsRetryingOnEINTR(path, &stats); err != nil {
		return 0, err
	}
	if stats.Namelen <= 0 {
		return len(unix.Dirent{}.Name) - 1, nil
	}
	return int(stats.Namelen), nil
}
