//go:build linux || darwin

package bridge

import (
	"math"

	"github.com/mutagen-io/statbridge/pkg/bufpool"
	"github.com/mutagen-io/statbridge/pkg/logging"
)

// readTargetInitialBufferSize specifies the size of the fixed buffer used for
// the first readlink attempt. It should be large enough to accommodate most
// symbolic links without a heap allocation.
const readTargetInitialBufferSize = 128

// readTarget reads the target of the symbolic link at path. It also returns the
// number of readlink attempts performed.
//
// readlink provides no way to learn the untruncated length of a target, so a
// read that fills the buffer completely is treated as possibly truncated and
// retried with a buffer of double the size, even though the first read may
// have been an exact fit.
func readTarget(path string, logger *logging.Logger) (string, int, error) {
	// Convert the path to its native representation.
	native, err := toNative(path)
	if err != nil {
		return "", 0, err
	}
	defer native.release()

	// Start with the fixed buffer. Any heap buffer acquired during growth is
	// returned to the pool on exit.
	var fixed [readTargetInitialBufferSize]byte
	buffer := fixed[:]
	var heap []byte
	defer func() {
		if heap != nil {
			bufpool.Put(heap)
		}
	}()

	// Loop until the target fits with space to spare.
	for attempts := 1; ; attempts++ {
		// Read the symbolic link target. POSIX specifies that a negative count
		// indicates failure, so treat one without an error as unknown.
		count, err := readlinkRetryingOnEINTR(native.String(), buffer)
		if err != nil {
			return "", attempts, translate(err, path)
		} else if count < 0 {
			return "", attempts, newNativeFailure("unknown readlink failure occurred")
		}

		// If there's space to spare, then the target is complete.
		if count < len(buffer) {
			return fromNative(buffer, count), attempts, nil
		}

		// Compute the next buffer size, watching for overflow.
		if len(buffer) > math.MaxInt/2 {
			return "", attempts, newOutOfMemory()
		}
		size := len(buffer) * 2

		// Swap in a larger heap buffer.
		if heap != nil {
			bufpool.Put(heap)
		}
		heap = bufpool.Get(size)
		buffer = heap
		logger.Tracef("Growing symbolic link buffer for %s to %d bytes", path, size)
	}
}

// createLink creates a symbolic link at path pointing to target.
func createLink(path, target string) error {
	// Convert both strings to their native representations.
	nativePath, err := toNative(path)
	if err != nil {
		return err
	}
	defer nativePath.release()
	nativeTarget, err := toNative(target)
	if err != nil {
		return err
	}
	defer nativeTarget.release()

	// Create the link.
	if err := symlinkRetryingOnEINTR(nativeTarget.String(), nativePath.String()); err != nil {
		return translate(err, path)
	}

	// Success.
	return nil
}
