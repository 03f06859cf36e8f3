package bridge

import (
	"fmt"

	"github.com/mutagen-io/statbridge/pkg/logging"
)

// errUnloaded is returned by operations invoked after Unload.
var errUnloaded = newNativeFailure("bridge unloaded")

// Bridge provides the filesystem operations. It is safe for concurrent usage;
// each operation owns all of its native resources and the only shared state is
// the read-only registry.
type Bridge struct {
	// registry holds the resolved record schemas.
	registry *Registry
	// logger is the underlying logger.
	logger *logging.Logger
}

// Load resolves the record registry and creates a bridge. If resolution fails,
// or if the platform isn't supported, then no bridge is returned and callers
// should treat the functionality as unavailable.
func Load(logger *logging.Logger) (*Bridge, error) {
	// Verify platform support.
	if !supported {
		err := newNativeFailure("bridge unsupported on this platform")
		logger.Error(err)
		return nil, err
	}

	// Resolve the registry.
	registry, err := LoadRegistry(declarations)
	if err != nil {
		logger.Error(err)
		return nil, fmt.Errorf("unable to load record registry: %w", err)
	}
	logger.Infof("Loaded bridge with %d record schemas", registry.Len())

	// Success.
	return &Bridge{
		registry: registry,
		logger:   logger,
	}, nil
}

// Registry returns the bridge's record registry.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// Unload releases the bridge's registry. No operations may be invoked after
// Unload; any that are will fail. Unload is safe to call more than once.
func (b *Bridge) Unload() {
	if b.registry.Unload() {
		b.logger.Info("Unloaded bridge")
	}
}

// begin verifies that the bridge is still loaded.
func (b *Bridge) begin() error {
	if !b.registry.Loaded() {
		return errUnloaded
	}
	return nil
}

// failed logs an operation failure and returns the error unchanged.
func (b *Bridge) failed(operation, path string, err error) error {
	b.logger.Debugf("%s of %s failed: %v", operation, path, err)
	return err
}

// Probe returns metadata for path without following a terminal symbolic link.
func (b *Bridge) Probe(path string) (*Metadata, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	metadata, err := probe(path)
	if err != nil {
		return nil, b.failed("probe", path, err)
	}
	return metadata, nil
}

// List returns the entries of the directory at path, excluding "." and "..".
// The order is the order reported by the system and isn't sorted. The returned
// slice's length equals its capacity.
func (b *Bridge) List(path string) ([]DirectoryEntry, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	entries, _, err := list(path, b.logger)
	if err != nil {
		return nil, b.failed("list", path, err)
	}
	return entries, nil
}

// ReadTarget returns the target of the symbolic link at path, exactly as
// stored.
func (b *Bridge) ReadTarget(path string) (string, error) {
	if err := b.begin(); err != nil {
		return "", err
	}
	target, _, err := readTarget(path, b.logger)
	if err != nil {
		return "", b.failed("readlink", path, err)
	}
	return target, nil
}

// CreateLink creates a symbolic link at path pointing to target.
func (b *Bridge) CreateLink(path, target string) error {
	if err := b.begin(); err != nil {
		return err
	}
	if err := createLink(path, target); err != nil {
		return b.failed("symlink", path, err)
	}
	return nil
}
