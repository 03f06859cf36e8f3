//go:build linux || darwin

package bridge

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/statbridge/pkg/bufpool"
)

const (
	// direntInodeOffset is the offset of the inode number within a raw
	// directory record.
	direntInodeOffset = int(unsafe.Offsetof(unix.Dirent{}.Ino))
	// direntRecordLengthOffset is the offset of the record length within a raw
	// directory record.
	direntRecordLengthOffset = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
	// direntTypeOffset is the offset of the type code within a raw directory
	// record.
	direntTypeOffset = int(unsafe.Offsetof(unix.Dirent{}.Type))
	// direntNameOffset is the offset of the name within a raw directory record.
	direntNameOffset = int(unsafe.Offsetof(unix.Dirent{}.Name))
	// direntAlignment is the alignment of raw directory records.
	direntAlignment = 8
)

// errMalformedDirent is returned when the system returns a directory record
// that can't be parsed.
var errMalformedDirent = newNativeFailure("malformed directory record")

// direntBufferSize computes the size of the reusable directory read buffer for
// a filesystem whose names are bounded by nameMaximum bytes. The buffer holds
// at least one maximal record and is rounded up to the medium pool size class
// so that a single read may return several records.
func direntBufferSize(nameMaximum int) (int, error) {
	if nameMaximum < 0 || nameMaximum > math.MaxInt-direntNameOffset-direntAlignment {
		return 0, newOutOfMemory()
	}
	size := direntNameOffset + nameMaximum + 1
	size = (size + direntAlignment - 1) &^ (direntAlignment - 1)
	if size < bufpool.MediumSize {
		size = bufpool.MediumSize
	}
	return size, nil
}

// classify maps a raw directory record type code to an entry type.
func classify(code uint8) EntryType {
	switch code {
	case unix.DT_DIR:
		return EntryTypeDirectory
	case unix.DT_REG:
		return EntryTypeFile
	case unix.DT_LNK:
		return EntryTypeSymbolicLink
	default:
		return EntryTypeUnknown
	}
}

// parseDirents walks the raw directory records in records, invoking visit with
// each live record's name and type. The name slice aliases records and is only
// valid for the duration of the callback.
func parseDirents(records []byte, visit func(name []byte, entryType EntryType) error) error {
	for len(records) > 0 {
		// Extract the record.
		if len(records) < direntNameOffset {
			return errMalformedDirent
		}
		length := int(binary.NativeEndian.Uint16(records[direntRecordLengthOffset:]))
		if length < direntNameOffset || length > len(records) {
			return errMalformedDirent
		}
		record := records[:length]
		records = records[length:]

		// Skip records for removed entries.
		if binary.NativeEndian.Uint64(record[direntInodeOffset:]) == 0 {
			continue
		}

		// Visit the entry.
		if err := visit(direntName(record), classify(record[direntTypeOffset])); err != nil {
			return err
		}
	}

	// Success.
	return nil
}
