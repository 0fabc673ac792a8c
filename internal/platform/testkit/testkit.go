// Package testkit holds assertions and seams shared by package tests
package testkit

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// MustPanic runs fn and fails unless it panics, the recovered value is returned
func MustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// MustPanicWith is MustPanic plus a check on the panic message
func MustPanicWith(t *testing.T, substr string, fn func()) {
	t.Helper()
	if msg := fmt.Sprint(MustPanic(t, fn)); !strings.Contains(msg, substr) {
		t.Fatalf("panic %q does not mention %q", msg, substr)
	}
}

// MustNotPanic runs fn and fails if it panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails when haystack lacks needle, printing the haystack
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\nfull output:\n%s", needle, haystack)
	}
}

// Logger returns a JSON zerolog logger writing into the returned buffer
func Logger(t *testing.T) (*zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := zerolog.New(buf).With().Timestamp().Logger()
	return &l, buf
}

var seamMu sync.Mutex

// Swap replaces a package level variable, usually a constructor seam, until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock for the rest of the test
// use it in tests that Swap seams other tests read
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
