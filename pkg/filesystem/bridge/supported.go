//go:build linux || darwin

package bridge

// supported indicates whether or not the bridge is implemented on the current
// platform.
const supported = true
