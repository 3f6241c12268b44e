package cli

import (
	"testing"
)

// isolate runs the test in an empty directory with an empty home, so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}
