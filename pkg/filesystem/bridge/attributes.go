package bridge

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Attributes is a summary of a filesystem entry, suitable for working tree
// comparisons. It is derived from a single metadata probe.
type Attributes struct {
	// Name is the base name of the entry.
	Name string
	// Exists indicates whether or not the entry exists. If false, all other
	// fields except Name are zero.
	Exists bool
	// Type is the entry type.
	Type EntryType
	// Executable indicates that the entry is a regular file that the calling
	// process may execute.
	Executable bool
	// LastModified is the modification time, including sub-second precision.
	LastModified time.Time
	// Length is the entry size in bytes.
	Length int64
	// Metadata is the underlying metadata record, nil if the entry doesn't
	// exist.
	Metadata *Metadata
}

// Attributes returns the attributes of the entry at path, without following a
// terminal symbolic link. A missing entry isn't an error; it results in
// attributes with Exists set to false.
func (b *Bridge) Attributes(path string) (*Attributes, error) {
	metadata, err := b.Probe(path)
	if errors.Is(err, ErrNoSuchFile) {
		return &Attributes{Name: filepath.Base(path)}, nil
	} else if err != nil {
		return nil, err
	}
	entryType := metadata.Type()
	return &Attributes{
		Name:         filepath.Base(path),
		Exists:       true,
		Type:         entryType,
		Executable:   entryType == EntryTypeFile && canExecute(path),
		LastModified: metadata.ModificationTime(),
		Length:       metadata.Size,
		Metadata:     metadata,
	}, nil
}

// probeType returns the type of the entry at path, or false if it doesn't
// exist or can't be probed.
func (b *Bridge) probeType(path string) (EntryType, bool) {
	metadata, err := b.Probe(path)
	if err != nil {
		return EntryTypeUnknown, false
	}
	return metadata.Type(), true
}

// Exists returns whether or not an entry exists at path. A dangling symbolic
// link exists.
func (b *Bridge) Exists(path string) bool {
	_, ok := b.probeType(path)
	return ok
}

// IsDirectory returns whether or not path is a directory. Symbolic links to
// directories are not directories.
func (b *Bridge) IsDirectory(path string) bool {
	entryType, ok := b.probeType(path)
	return ok && entryType == EntryTypeDirectory
}

// IsFile returns whether or not path is a regular file.
func (b *Bridge) IsFile(path string) bool {
	entryType, ok := b.probeType(path)
	return ok && entryType == EntryTypeFile
}

// IsSymbolicLink returns whether or not path is a symbolic link.
func (b *Bridge) IsSymbolicLink(path string) (bool, error) {
	metadata, err := b.Probe(path)
	if err != nil {
		return false, err
	}
	return metadata.Type() == EntryTypeSymbolicLink, nil
}

// LastModified returns the modification time of path with sub-second
// precision.
func (b *Bridge) LastModified(path string) (time.Time, error) {
	metadata, err := b.Probe(path)
	if err != nil {
		return time.Time{}, err
	}
	return metadata.ModificationTime(), nil
}

// Length returns the size of path in bytes. For symbolic links, this is the
// length of the target.
func (b *Bridge) Length(path string) (int64, error) {
	metadata, err := b.Probe(path)
	if err != nil {
		return 0, err
	}
	return metadata.Size, nil
}

// SetExecutable adds or removes execute permission on the regular file at
// path. Making a file executable always grants owner execute permission and
// grants group and other execute permission only where the process umask
// allows it. Removing execute permission clears all execute bits. Paths that
// aren't regular files are rejected.
func (b *Bridge) SetExecutable(path string, executable bool) error {
	if err := b.begin(); err != nil {
		return err
	}
	if err := setExecutable(path, executable, currentUmask()); err != nil {
		return b.failed("chmod", path, err)
	}
	return nil
}

// SetLastModified sets the modification time of path, with sub-second
// precision where the filesystem supports it. A terminal symbolic link is
// modified itself rather than followed.
func (b *Bridge) SetLastModified(path string, modified time.Time) error {
	if err := b.begin(); err != nil {
		return err
	}
	if err := setLastModified(path, modified); err != nil {
		return b.failed("utimes", path, err)
	}
	return nil
}

// IsHidden returns whether or not path names a hidden entry, which on POSIX
// systems is any entry whose base name begins with a dot.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// NormalizeName converts an entry name to Unicode normalization form C. This is
// necessary on filesystems (e.g. HFS+) that store names in decomposed form.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}
