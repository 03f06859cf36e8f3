package bridge

import (
	"errors"
	"syscall"
)

// Kind identifies the category of a bridge error.
type Kind int32

const (
	// KindNativeFailure indicates a generic operating system failure. The
	// error message is the system-provided description of the failure.
	KindNativeFailure Kind = iota
	// KindAccessDenied indicates that permission to access a path was denied.
	KindAccessDenied
	// KindNoSuchFile indicates that a path (or one of its components) doesn't
	// exist.
	KindNoSuchFile
	// KindNotDirectory indicates that a path component used as a directory
	// isn't a directory.
	KindNotDirectory
	// KindOutOfMemory indicates that a buffer or collection couldn't be sized
	// to hold a result.
	KindOutOfMemory
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNativeFailure:
		return "native failure"
	case KindAccessDenied:
		return "access denied"
	case KindNoSuchFile:
		return "no such file"
	case KindNotDirectory:
		return "not a directory"
	case KindOutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all bridge operations.
type Error struct {
	// Kind is the error category.
	Kind Kind
	// Path is the offending path as provided by the caller. It is only set for
	// KindAccessDenied, KindNoSuchFile, and KindNotDirectory.
	Path string
	// Message is the system-provided failure description. It is only set for
	// KindNativeFailure.
	Message string
	// Errno is the underlying system error code, if any.
	Errno syscall.Errno
}

// Error implements error.Error.
func (e *Error) Error() string {
	switch e.Kind {
	case KindAccessDenied, KindNoSuchFile, KindNotDirectory:
		return e.Kind.String() + ": " + e.Path
	case KindOutOfMemory:
		return e.Kind.String()
	default:
		return e.Message
	}
}

// Unwrap returns the underlying system error code, allowing errors.Is checks
// against values such as fs.ErrNotExist.
func (e *Error) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}

// Is reports whether target is a bridge error of the same kind. This allows
// callers to use the Err* sentinel values with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == e.Kind
	}
	return false
}

var (
	// ErrNativeFailure matches errors of KindNativeFailure.
	ErrNativeFailure = &Error{Kind: KindNativeFailure, Message: "native failure"}
	// ErrAccessDenied matches errors of KindAccessDenied.
	ErrAccessDenied = &Error{Kind: KindAccessDenied}
	// ErrNoSuchFile matches errors of KindNoSuchFile.
	ErrNoSuchFile = &Error{Kind: KindNoSuchFile}
	// ErrNotDirectory matches errors of KindNotDirectory.
	ErrNotDirectory = &Error{Kind: KindNotDirectory}
	// ErrOutOfMemory matches errors of KindOutOfMemory.
	ErrOutOfMemory = &Error{Kind: KindOutOfMemory}
)

// newNativeFailure creates a native failure error with the specified message.
func newNativeFailure(message string) *Error {
	return &Error{Kind: KindNativeFailure, Message: message}
}

// newOutOfMemory creates an out of memory error.
func newOutOfMemory() *Error {
	return &Error{Kind: KindOutOfMemory}
}

// translateErrno maps a system error code to a typed error. The path is the
// caller-provided path and is only attached to path-related kinds.
func translateErrno(errno syscall.Errno, path string) *Error {
	switch errno {
	case syscall.EACCES:
		return &Error{Kind: KindAccessDenied, Path: path, Errno: errno}
	case syscall.ENOENT:
		return &Error{Kind: KindNoSuchFile, Path: path, Errno: errno}
	case syscall.ENOTDIR:
		return &Error{Kind: KindNotDirectory, Path: path, Errno: errno}
	default:
		return &Error{Kind: KindNativeFailure, Message: errno.Error(), Errno: errno}
	}
}

// translate converts an arbitrary error from the syscall layer into a typed
// error. Errors that are already typed are passed through unchanged.
func translate(err error, path string) error {
	if err == nil {
		return nil
	}

	// Pass through errors that have already been translated.
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	// Map system error codes.
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return translateErrno(errno, path)
	}

	// Anything else is a generic failure.
	return newNativeFailure(err.Error())
}
