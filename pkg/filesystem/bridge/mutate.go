//go:build linux || darwin

package bridge

import (
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// processUmask caches the process umask.
var processUmask struct {
	once  sync.Once
	value uint32
}

// currentUmask returns the process umask. The umask can only be read by
// setting it, so it's read once and immediately restored.
func currentUmask() uint32 {
	processUmask.once.Do(func() {
		mask := unix.Umask(0022)
		unix.Umask(mask)
		processUmask.value = uint32(mask)
	})
	return processUmask.value
}

// executeGrants computes the execute bits to add when making a file
// executable. Owner execute is always granted; group and other execute are
// granted only if the umask doesn't mask them.
func executeGrants(umask uint32) uint32 {
	grants := uint32(modeOwnerExecute)
	if umask&modeGroupExecute == 0 {
		grants |= modeGroupExecute
	}
	if umask&modeOtherExecute == 0 {
		grants |= modeOtherExecute
	}
	return grants
}

// setExecutable adds or removes execute permission on the regular file at
// path. When adding, the granted bits are derived from umask. When removing,
// all execute bits are cleared.
func setExecutable(path string, executable bool, umask uint32) error {
	// Convert the path to its native representation.
	native, err := toNative(path)
	if err != nil {
		return err
	}
	defer native.release()

	// Verify that the path is a regular file and grab its permissions.
	var stat unix.Stat_t
	if err := lstatRetryingOnEINTR(native.String(), &stat); err != nil {
		return translate(err, path)
	}
	mode := uint32(stat.Mode)
	if mode&modeTypeMask != modeTypeFile {
		return newNativeFailure("not a regular file")
	}

	// Compute and set the new permissions.
	permissions := mode & modePermissionsMask
	if executable {
		permissions |= executeGrants(umask)
	} else {
		permissions &^= modeExecuteMask
	}
	if err := chmodRetryingOnEINTR(native.String(), permissions); err != nil {
		return translate(err, path)
	}

	// Success.
	return nil
}

// setLastModified sets the modification time of path without following a
// terminal symbolic link. The access time is preserved.
func setLastModified(path string, modified time.Time) error {
	// Convert the path to its native representation.
	native, err := toNative(path)
	if err != nil {
		return err
	}
	defer native.release()

	// Convert the modification time.
	modification, err := unix.TimeToTimespec(modified)
	if err != nil {
		return translate(err, path)
	}

	// Grab the current access time.
	var stat unix.Stat_t
	if err := lstatRetryingOnEINTR(native.String(), &stat); err != nil {
		return translate(err, path)
	}
	access, _, _ := extractTimes(&stat)

	// Set the times.
	times := []unix.Timespec{access, modification}
	if err := utimesNanoAtRetryingOnEINTR(unix.AT_FDCWD, native.String(), times, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return translate(err, path)
	}

	// Success.
	return nil
}
