//go:build linux || darwin

package bridge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

func TestReadTargetShort(t *testing.T) {
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink("target", link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	target, attempts, err := readTarget(link, nil)
	if err != nil {
		t.Fatal("unable to read symbolic link:", err)
	}
	if target != "target" {
		t.Error("target mismatch:", target)
	}
	if attempts != 1 {
		t.Error("short target required multiple attempts:", attempts)
	}
}

func TestReadTargetLong(t *testing.T) {
	link := filepath.Join(t.TempDir(), "link")
	expected := strings.Repeat("x", 200)
	if err := os.Symlink(expected, link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	target, attempts, err := readTarget(link, nil)
	if err != nil {
		t.Fatal("unable to read symbolic link:", err)
	}
	if target != expected {
		t.Error("target mismatch:", len(target))
	}
	if attempts < 2 {
		t.Error("long target read without growth:", attempts)
	}
}

func TestReadTargetExactFit(t *testing.T) {
	link := filepath.Join(t.TempDir(), "link")
	expected := strings.Repeat("y", readTargetInitialBufferSize)
	if err := os.Symlink(expected, link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	target, attempts, err := readTarget(link, nil)
	if err != nil {
		t.Fatal("unable to read symbolic link:", err)
	}
	if target != expected {
		t.Error("target mismatch:", len(target))
	}
	if attempts != 2 {
		t.Error("exact-fit target not retried:", attempts)
	}
}

func TestReadTargetVeryLong(t *testing.T) {
	// Build a multi-component target well beyond the initial buffer.
	components := make([]string, 64)
	for i := range components {
		components[i] = "component"
	}
	expected := strings.Join(components, "/")
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(expected, link); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	if target, attempts, err := readTarget(link, nil); err != nil {
		t.Fatal("unable to read symbolic link:", err)
	} else if target != expected {
		t.Error("target mismatch")
	} else if attempts < 4 {
		t.Error("unexpected attempt count:", attempts)
	}
}

func TestReadTargetNotSymbolicLink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	_, _, err := readTarget(path, nil)
	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatal("untyped error:", err)
	}
	if typed.Kind != KindNativeFailure || typed.Errno != syscall.EINVAL {
		t.Error("unexpected error:", typed.Kind, typed.Errno)
	}
	if typed.Message != syscall.EINVAL.Error() {
		t.Error("native failure doesn't carry system message:", typed.Message)
	}
}

func TestReadTargetNonExistent(t *testing.T) {
	if _, _, err := readTarget(filepath.Join(t.TempDir(), "missing"), nil); !errors.Is(err, ErrNoSuchFile) {
		t.Error("unexpected error:", err)
	}
}

func TestCreateLinkRoundTrip(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "link")
	if err := createLink(link, "../some/target"); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	if target, err := os.Readlink(link); err != nil {
		t.Fatal("unable to read symbolic link:", err)
	} else if target != "../some/target" {
		t.Error("target mismatch:", target)
	}
	if target, _, err := readTarget(link, nil); err != nil {
		t.Fatal("unable to read symbolic link:", err)
	} else if target != "../some/target" {
		t.Error("target mismatch:", target)
	}
}

func TestCreateLinkExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	err := createLink(path, "target")
	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatal("untyped error:", err)
	}
	if typed.Kind != KindNativeFailure || typed.Errno != syscall.EEXIST {
		t.Error("unexpected error:", typed.Kind, typed.Errno)
	}
}

func TestCreateLinkMissingParent(t *testing.T) {
	link := filepath.Join(t.TempDir(), "missing", "link")
	if err := createLink(link, "target"); !errors.Is(err, ErrNoSuchFile) {
		t.Error("unexpected error:", err)
	}
}

func TestCreateLinkNullTarget(t *testing.T) {
	link := filepath.Join(t.TempDir(), "link")
	if err := createLink(link, "bad\x00target"); !errors.Is(err, ErrNativeFailure) {
		t.Error("unexpected error:", err)
	}
	if _, err := os.Lstat(link); !os.IsNotExist(err) {
		t.Error("link created despite invalid target")
	}
}
