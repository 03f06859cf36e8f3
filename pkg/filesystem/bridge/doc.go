// Package bridge provides link-aware filesystem metadata queries, directory
// enumeration, and symbolic link operations that expose values the os package
// can't portably surface: raw device and inode numbers, sub-second change and
// access times, and symbolic link identity without traversal. Every failure is
// reported as a single *Error whose Kind can be inspected with errors.Is.
//
// A Bridge must be obtained from Load before any operation is invoked. Load
// resolves the record schemas used by the bridge and fails as a whole if any
// of them can't be resolved, in which case the bridge functionality should be
// treated as unavailable.
package bridge
