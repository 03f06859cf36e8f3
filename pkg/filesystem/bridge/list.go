//go:build linux || darwin

package bridge

import (
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/statbridge/pkg/bufpool"
	"github.com/mutagen-io/statbridge/pkg/logging"
	"github.com/mutagen-io/statbridge/pkg/must"
)

// isDotName returns whether or not a raw name is "." or "..".
func isDotName(name []byte) bool {
	return (len(name) == 1 && name[0] == '.') ||
		(len(name) == 2 && name[0] == '.' && name[1] == '.')
}

// list enumerates the directory at path, excluding "." and "..". Entries are
// returned in the order reported by the system. It also returns the number of
// times that entry storage had to be grown.
func list(path string, logger *logging.Logger) ([]DirectoryEntry, int, error) {
	// Convert the path to its native representation.
	native, err := toNative(path)
	if err != nil {
		return nil, 0, err
	}
	defer native.release()

	// Size and acquire the reusable record buffer.
	nameMaximum, err := maximumNameLength(native.String())
	if err != nil {
		return nil, 0, translate(err, path)
	}
	bufferSize, err := direntBufferSize(nameMaximum)
	if err != nil {
		return nil, 0, err
	}
	buffer := bufpool.Get(bufferSize)
	defer bufpool.Put(buffer)

	// Create entry storage.
	entries := newEntryCollection(initialEntryCapacity)

	// Open the directory and defer its closure.
	descriptor, err := openRetryingOnEINTR(native.String(), unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, 0, translate(err, path)
	}
	defer must.CloseDescriptor(closeConsideringEINTR, descriptor, logger)

	// Create the record visitor.
	visit := func(name []byte, entryType EntryType) error {
		if isDotName(name) {
			return nil
		}
		capacity := len(entries.storage)
		if err := entries.append(DirectoryEntry{
			Name: fromNative(name, len(name)),
			Type: entryType,
		}); err != nil {
			return err
		}
		if len(entries.storage) != capacity {
			logger.Tracef("Grew entry storage for %s from %d to %d", path, capacity, len(entries.storage))
		}
		return nil
	}

	// Read records until the directory is exhausted. The iteration state lives
	// entirely in the descriptor offset and our buffer, so concurrent listings
	// don't interfere.
	for {
		count, err := readDirentRetryingOnEINTR(descriptor, buffer)
		if err != nil {
			return nil, 0, translate(err, path)
		} else if count <= 0 {
			break
		}
		if err := parseDirents(buffer[:count], visit); err != nil {
			return nil, 0, err
		}
	}

	// Success.
	return entries.exact(), entries.growths, nil
}
