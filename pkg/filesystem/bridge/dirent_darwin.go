package bridge

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntNameLengthOffset is the offset of the name length within a raw
// directory record.
const direntNameLengthOffset = int(unsafe.Offsetof(unix.Dirent{}.Namlen))

// direntName extracts the name from a raw directory record using the record's
// name length field.
func direntName(record []byte) []byte {
	length := int(binary.NativeEndian.Uint16(record[direntNameLengthOffset:]))
	if end := direntNameOffset + length; end <= len(record) {
		return record[direntNameOffset:end]
	}
	return record[direntNameOffset:]
}

// maximumNameLength returns the maximum entry name length for the filesystem
// containing path. On macOS, unix.ReadDirent is emulated with readdir_r and
// copies whole records, so the bound is the size of the record name field
// rather than NAME_MAX.
func maximumNameLength(_ string) (int, error) {
	return len(unix.Dirent{}.Name) - 1, nil
}
