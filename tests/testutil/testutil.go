// Package testutil carries shared scaffolding for the integration and
// acceptance suites: an environment guard plus fixtures for admin accounts
// and tokens.
package testutil

import (
	"os"
	"testing"
)

// RequireTestEnvironment aborts a test about to touch the ambient database
// unless GO_ENV is "test". Suites call it before wiping tables in SetupTest.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("refusing to run with GO_ENV=%q; set GO_ENV=test", env)
	}
}

// SkipOutsideTestEnvironment skips instead of failing, for tests that are
// merely pointless outside the test setup rather than dangerous.
func SkipOutsideTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Skipf("GO_ENV=%q, want test", env)
	}
}
