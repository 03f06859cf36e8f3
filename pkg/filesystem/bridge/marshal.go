package bridge

import (
	"math"
	"strings"
	"syscall"
	"unsafe"

	"github.com/mutagen-io/statbridge/pkg/bufpool"
)

// nativeString is an owned, null-terminated native byte representation of a
// string. It must be released exactly once via release. Subsequent releases
// are no-ops.
type nativeString struct {
	// buffer holds the string bytes followed by a null terminator. It is nil
	// once the string has been released.
	buffer []byte
}

// toNative copies the bytes of s into a freshly acquired null-terminated
// buffer. Strings containing null bytes can't be represented natively and are
// rejected with the system's EINVAL description.
func toNative(s string) (*nativeString, error) {
	// Verify that the string is representable.
	if strings.IndexByte(s, 0) != -1 {
		return nil, &Error{Kind: KindNativeFailure, Message: syscall.EINVAL.Error(), Errno: syscall.EINVAL}
	}

	// Verify that room for the terminator can be computed.
	if len(s) >= math.MaxInt {
		return nil, newOutOfMemory()
	}

	// Acquire and populate the buffer.
	buffer := bufpool.Get(len(s) + 1)
	copy(buffer, s)
	buffer[len(s)] = 0

	// Success.
	return &nativeString{buffer: buffer}, nil
}

// Bytes returns the native bytes without the null terminator. The result is
// only valid until release is called.
func (n *nativeString) Bytes() []byte {
	return n.buffer[:len(n.buffer)-1]
}

// String returns a view of the native bytes (without the null terminator) as a
// string. The view aliases the owned buffer and is only valid until release is
// called, so it must not be retained beyond the system call it is passed to.
// x/sys makes its own terminated copy of the view, so the owned buffer serves
// only to reject unrepresentable strings and to bound the string's lifetime.
func (n *nativeString) String() string {
	length := len(n.buffer) - 1
	if length == 0 {
		return ""
	}
	return unsafe.String(&n.buffer[0], length)
}

// release returns the buffer to the pool.
func (n *nativeString) release() {
	if n.buffer != nil {
		bufpool.Put(n.buffer)
		n.buffer = nil
	}
}

// fromNative constructs a string from exactly length raw bytes. No encoding
// validation is performed.
func fromNative(bytes []byte, length int) string {
	return string(bytes[:length])
}
