//go:build linux || darwin

package bridge

import (
	"golang.org/x/sys/unix"
)

// newMetadata converts a raw stat result into a metadata record. Integer fields
// other than the size are deliberately truncated to 32 bits.
func newMetadata(stat *unix.Stat_t) *Metadata {
	access, modification, change := extractTimes(stat)
	return &Metadata{
		Device:                      int32(stat.Dev),
		Inode:                       int32(stat.Ino),
		Mode:                        int32(stat.Mode),
		UID:                         int32(stat.Uid),
		GID:                         int32(stat.Gid),
		Size:                        int64(stat.Size),
		AccessTimeSeconds:           int32(access.Sec),
		AccessTimeNanoseconds:       int32(access.Nsec),
		ModificationTimeSeconds:     int32(modification.Sec),
		ModificationTimeNanoseconds: int32(modification.Nsec),
		ChangeTimeSeconds:           int32(change.Sec),
		ChangeTimeNanoseconds:       int32(change.Nsec),
	}
}

// probe performs a link-aware metadata query on path. It does not follow a
// terminal symbolic link.
func probe(path string) (*Metadata, error) {
	// Convert the path to its native representation.
	native, err := toNative(path)
	if err != nil {
		return nil, err
	}
	defer native.release()

	// Query metadata.
	var stat unix.Stat_t
	if err := lstatRetryingOnEINTR(native.String(), &stat); err != nil {
		return nil, translate(err, path)
	}

	// Success.
	return newMetadata(&stat), nil
}

// canExecute returns whether or not the calling process may execute path.
func canExecute(path string) bool {
	native, err := toNative(path)
	if err != nil {
		return false
	}
	defer native.release()
	return accessRetryingOnEINTR(native.String(), unix.X_OK) == nil
}
