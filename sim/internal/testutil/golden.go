// Package testutil provides shared test infrastructure for the salon simulator.
// It consolidates golden event logs and assertion helpers used across
// sim/ and sim/trace/ test packages.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// LoadGoldenLog loads testdata/<name> and returns its lines.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenLog(t *testing.T, name string) []string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden log %s: %v", name, err)
	}
	return SplitLines(string(data))
}

// SplitLines splits captured output into lines, dropping the trailing newline.
func SplitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// AssertLinesEqual compares two event logs line by line and reports the first divergence.
func AssertLinesEqual(t *testing.T, want, got []string) {
	t.Helper()
	n := min(len(want), len(got))
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			t.Fatalf("line %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
	if len(want) != len(got) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
}
