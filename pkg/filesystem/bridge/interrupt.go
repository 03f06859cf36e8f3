//go:build linux || darwin

package bridge

import (
	"errors"

	"golang.org/x/sys/unix"
)

// lstatRetryingOnEINTR is a wrapper around the lstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func lstatRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Lstat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// openRetryingOnEINTR is a wrapper around the open system call that retries on
// EINTR errors and returns on the first successful call or non-EINTR error.
func openRetryingOnEINTR(path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Open(path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// closeConsideringEINTR is a direct passthrough to the close system call that
// doesn't retry on EINTR. POSIX makes no guarantees about the state of a file
// descriptor after an EINTR failure from close, so retrying could race with
// descriptor reuse.
func closeConsideringEINTR(file int) error {
	return unix.Close(file)
}

// readDirentRetryingOnEINTR is a wrapper around the platform's raw directory
// read system call that retries on EINTR errors and returns on the first
// successful call or non-EINTR error. A zero count indicates the end of the
// directory.
func readDirentRetryingOnEINTR(directory int, buffer []byte) (int, error) {
	for {
		result, err := unix.ReadDirent(directory, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// readlinkRetryingOnEINTR is a wrapper around the readlink system call that
// retries on EINTR errors and returns on the first successful call or non-EINTR
// error.
func readlinkRetryingOnEINTR(path string, buffer []byte) (int, error) {
	for {
		result, err := unix.Readlink(path, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// symlinkRetryingOnEINTR is a wrapper around the symlink system call that
// retries on EINTR errors and returns on the first successful call or non-EINTR
// error.
func symlinkRetryingOnEINTR(target, path string) error {
	for {
		err := unix.Symlink(target, path)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// accessRetryingOnEINTR is a wrapper around the access system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func accessRetryingOnEINTR(path string, mode uint32) error {
	for {
		err := unix.Access(path, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// chmodRetryingOnEINTR is a wrapper around the chmod system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func chmodRetryingOnEINTR(path string, mode uint32) error {
	for {
		err := unix.Chmod(path, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// utimesNanoAtRetryingOnEINTR is a wrapper around the utimensat system call
// that retries on EINTR errors and returns on the first successful call or
// non-EINTR error.
func utimesNanoAtRetryingOnEINTR(directory int, path string, times []unix.Timespec, flags int) error {
	for {
		err := unix.UtimesNanoAt(directory, path, times, flags)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}
