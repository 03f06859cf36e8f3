package bridge

import (
	"time"
)

// EntryType classifies a filesystem entry. Its numeric values are stable.
type EntryType int32

const (
	// EntryTypeUnknown indicates an entry whose type couldn't be determined or
	// isn't one of the other recognized types.
	EntryTypeUnknown EntryType = 0
	// EntryTypeDirectory indicates a directory.
	EntryTypeDirectory EntryType = 1
	// EntryTypeFile indicates a regular file.
	EntryTypeFile EntryType = 2
	// EntryTypeSymbolicLink indicates a symbolic link.
	EntryTypeSymbolicLink EntryType = 3
)

// String returns a human-readable name for the entry type.
func (t EntryType) String() string {
	switch t {
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeFile:
		return "file"
	case EntryTypeSymbolicLink:
		return "symlink"
	default:
		return "unknown"
	}
}

const (
	// modeTypeMask isolates the file type bits of a POSIX mode.
	modeTypeMask = 0170000
	// modeTypeDirectory is the POSIX directory type.
	modeTypeDirectory = 0040000
	// modeTypeFile is the POSIX regular file type.
	modeTypeFile = 0100000
	// modeTypeSymbolicLink is the POSIX symbolic link type.
	modeTypeSymbolicLink = 0120000
	// modePermissionsMask isolates the permission bits of a POSIX mode.
	modePermissionsMask = 07777
	// modeOwnerExecute is the owner execute bit.
	modeOwnerExecute = 0100
	// modeGroupExecute is the group execute bit.
	modeGroupExecute = 0010
	// modeOtherExecute is the other execute bit.
	modeOtherExecute = 0001
	// modeExecuteMask isolates all execute bits.
	modeExecuteMask = modeOwnerExecute | modeGroupExecute | modeOtherExecute
)

// Metadata is the result of a link-aware metadata probe. All fields except Size
// are truncated to 32 bits for compatibility with consumers that store them in
// fixed-width index records. Sub-second fields are zero on filesystems that
// don't record sub-second precision.
type Metadata struct {
	// Device is the ID of the device containing the entry.
	Device int32
	// Inode is the entry's inode number.
	Inode int32
	// Mode holds the entry's type and permission bits.
	Mode int32
	// UID is the owning user ID.
	UID int32
	// GID is the owning group ID.
	GID int32
	// Size is the entry size in bytes.
	Size int64
	// AccessTimeSeconds is the whole-second component of the access time.
	AccessTimeSeconds int32
	// AccessTimeNanoseconds is the sub-second component of the access time.
	AccessTimeNanoseconds int32
	// ModificationTimeSeconds is the whole-second component of the
	// modification time.
	ModificationTimeSeconds int32
	// ModificationTimeNanoseconds is the sub-second component of the
	// modification time.
	ModificationTimeNanoseconds int32
	// ChangeTimeSeconds is the whole-second component of the status change
	// time.
	ChangeTimeSeconds int32
	// ChangeTimeNanoseconds is the sub-second component of the status change
	// time.
	ChangeTimeNanoseconds int32
}

// Type returns the entry type encoded in the mode bits.
func (m *Metadata) Type() EntryType {
	switch m.Mode & modeTypeMask {
	case modeTypeDirectory:
		return EntryTypeDirectory
	case modeTypeFile:
		return EntryTypeFile
	case modeTypeSymbolicLink:
		return EntryTypeSymbolicLink
	default:
		return EntryTypeUnknown
	}
}

// Permissions returns the permission bits of the mode.
func (m *Metadata) Permissions() uint32 {
	return uint32(m.Mode) & modePermissionsMask
}

// AccessTime returns the access time.
func (m *Metadata) AccessTime() time.Time {
	return time.Unix(int64(m.AccessTimeSeconds), int64(m.AccessTimeNanoseconds))
}

// ModificationTime returns the modification time.
func (m *Metadata) ModificationTime() time.Time {
	return time.Unix(int64(m.ModificationTimeSeconds), int64(m.ModificationTimeNanoseconds))
}

// ChangeTime returns the status change time.
func (m *Metadata) ChangeTime() time.Time {
	return time.Unix(int64(m.ChangeTimeSeconds), int64(m.ChangeTimeNanoseconds))
}

// DirectoryEntry is a single directory listing result.
type DirectoryEntry struct {
	// Name is the entry's base name.
	Name string
	// Type is the entry type as reported by the directory listing. It is not
	// verified with an additional metadata query.
	Type EntryType
}
