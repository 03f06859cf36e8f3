package bridge

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
)

func TestTranslateErrno(t *testing.T) {
	testCases := []struct {
		errno        syscall.Errno
		expectedKind Kind
		expectedPath string
	}{
		{syscall.EACCES, KindAccessDenied, "/some/path"},
		{syscall.ENOENT, KindNoSuchFile, "/some/path"},
		{syscall.ENOTDIR, KindNotDirectory, "/some/path"},
		{syscall.EEXIST, KindNativeFailure, ""},
		{syscall.EPERM, KindNativeFailure, ""},
		{syscall.ELOOP, KindNativeFailure, ""},
	}
	for _, testCase := range testCases {
		err := translateErrno(testCase.errno, "/some/path")
		if err.Kind != testCase.expectedKind {
			t.Errorf("errno %v mapped to %v, expected %v", testCase.errno, err.Kind, testCase.expectedKind)
		}
		if err.Path != testCase.expectedPath {
			t.Errorf("errno %v carried path %q, expected %q", testCase.errno, err.Path, testCase.expectedPath)
		}
		if testCase.expectedKind == KindNativeFailure && err.Message != testCase.errno.Error() {
			t.Errorf("errno %v carried message %q, expected system message", testCase.errno, err.Message)
		}
		if err.Errno != testCase.errno {
			t.Errorf("errno %v not recorded", testCase.errno)
		}
	}
}

func TestTranslatePassesThroughTypedErrors(t *testing.T) {
	original := newOutOfMemory()
	wrapped := fmt.Errorf("context: %w", original)
	if translated := translate(wrapped, "/path"); translated != original {
		t.Error("typed error not passed through translation:", translated)
	}
}

func TestTranslateWrappedErrno(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", syscall.ENOENT)
	if err := translate(wrapped, "/missing"); !errors.Is(err, ErrNoSuchFile) {
		t.Error("wrapped errno not translated:", err)
	}
}

func TestTranslateGenericError(t *testing.T) {
	err := translate(errors.New("something broke"), "/path")
	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatal("generic error not translated to typed error")
	}
	if typed.Kind != KindNativeFailure || typed.Message != "something broke" {
		t.Error("generic error translated incorrectly:", typed.Kind, typed.Message)
	}
	if translate(nil, "/path") != nil {
		t.Error("nil error translated to non-nil")
	}
}

func TestErrorIsKind(t *testing.T) {
	err := translateErrno(syscall.ENOTDIR, "/a/b")
	if !errors.Is(err, ErrNotDirectory) {
		t.Error("not directory error does not match sentinel")
	}
	if errors.Is(err, ErrNoSuchFile) {
		t.Error("not directory error matches wrong sentinel")
	}
	if !errors.Is(translateErrno(syscall.ENOENT, "/a"), fs.ErrNotExist) {
		t.Error("no such file error does not unwrap to fs.ErrNotExist")
	}
	if errors.Unwrap(newOutOfMemory()) != nil {
		t.Error("out of memory error unwraps to non-nil")
	}
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err      *Error
		expected string
	}{
		{translateErrno(syscall.EACCES, "/x"), "access denied: /x"},
		{translateErrno(syscall.ENOENT, "/x"), "no such file: /x"},
		{translateErrno(syscall.ENOTDIR, "/x"), "not a directory: /x"},
		{newOutOfMemory(), "out of memory"},
		{newNativeFailure("boom"), "boom"},
	}
	for _, testCase := range testCases {
		if message := testCase.err.Error(); message != testCase.expected {
			t.Errorf("error message %q, expected %q", message, testCase.expected)
		}
	}
}
