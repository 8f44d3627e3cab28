package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

const hexDumpWidth = 16

// HexDump renders b as lines of 16 bytes prefixed by their offset.
func HexDump(b []byte) string {
	var sb strings.Builder
	for off := 0; off < len(b); off += hexDumpWidth {
		end := min(off+hexDumpWidth, len(b))
		fmt.Fprintf(&sb, "%08x  %x\n", off, b[off:end])
	}
	return sb.String()
}

// DiffHex returns a unified diff of the hex dumps of expected and actual, or "" when they match.
func DiffHex(expected, actual []byte) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(HexDump(expected)),
		B:        difflib.SplitLines(HexDump(actual)),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	return diff
}

// RequireEqualHex compares two encodings and fails the test if they differ. Similar to
// testify's require.Equal, but the failure shows which lines of the hex dump changed.
func RequireEqualHex(t testing.TB, expected, actual []byte) {
	t.Helper()
	if diff := DiffHex(expected, actual); diff != "" {
		t.Fatalf("Encoding mismatch:\n%s", diff)
	}
}
