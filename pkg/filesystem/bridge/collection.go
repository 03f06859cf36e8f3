package bridge

import (
	"math"
)

const (
	// initialEntryCapacity is the initial capacity of an entry collection.
	initialEntryCapacity = 16
	// maximumEntryCapacity bounds the capacity of an entry collection.
	maximumEntryCapacity = math.MaxInt32
)

// entryCollection is a growable array of directory entries. Its storage grows
// by doubling and is never exposed directly; callers receive an exact-size copy
// from exact.
type entryCollection struct {
	// storage is the backing storage. Its length is the current capacity.
	storage []DirectoryEntry
	// count is the number of live entries at the front of storage.
	count int
	// growths is the number of times that storage has been grown.
	growths int
}

// newEntryCollection creates an empty collection with the specified capacity.
func newEntryCollection(capacity int) *entryCollection {
	return &entryCollection{
		storage: make([]DirectoryEntry, capacity),
	}
}

// grow doubles the collection's capacity, copying live entries into the new
// storage and dropping the old storage.
func (c *entryCollection) grow() error {
	// Compute the new capacity, watching for overflow.
	capacity := len(c.storage)
	if capacity == 0 {
		capacity = 1
	} else if capacity > maximumEntryCapacity/2 {
		return newOutOfMemory()
	} else {
		capacity *= 2
	}

	// Move live entries into the new storage.
	storage := make([]DirectoryEntry, capacity)
	copy(storage, c.storage[:c.count])
	c.storage = storage
	c.growths++

	// Success.
	return nil
}

// append adds an entry to the end of the collection, growing storage if the
// collection is full.
func (c *entryCollection) append(entry DirectoryEntry) error {
	if c.count == len(c.storage) {
		if err := c.grow(); err != nil {
			return err
		}
	}
	c.storage[c.count] = entry
	c.count++
	return nil
}

// exact returns the live entries in storage whose capacity equals their
// count. If the collection isn't full, then the entries are copied into new
// exact-size storage.
func (c *entryCollection) exact() []DirectoryEntry {
	if c.count == len(c.storage) {
		return c.storage
	}
	result := make([]DirectoryEntry, c.count)
	copy(result, c.storage[:c.count])
	return result
}
