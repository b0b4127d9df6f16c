package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Structural fails t with a structural diff if got and want are not
// deeply equal. Preferred over reflect.DeepEqual-based t.Fatalf calls
// for larger structures, where a full diff is much more useful than
// %#v dumps of both sides.
func Structural(t *testing.T, got, want interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("structural mismatch (-want +got):\n%s", diff)
	}
}
