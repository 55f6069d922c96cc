package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromList(t *testing.T) {
	got := FromList([]string{
		"CMAKE_COMMAND=/opt/cmake/bin/cmake",
		"EMPTY=",
		"NOEQUALS",
		"=hidden",
		"VisualStudioVersion=17.0",
		"CMAKE_COMMAND=cmake3",
		"OPTS=-DA=B",
	})
	want := Map{
		"CMAKE_COMMAND":       "cmake3",
		"EMPTY":               "",
		"VisualStudioVersion": "17.0",
		"OPTS":                "-DA=B",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromList() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapLookup(t *testing.T) {
	m := Map{"SET": "", "FULL": "x"}

	if v, ok := m.Lookup("SET"); !ok || v != "" {
		t.Errorf("Lookup(SET) = %q, %v, want \"\", true", v, ok)
	}
	if v, ok := m.Lookup("FULL"); !ok || v != "x" {
		t.Errorf("Lookup(FULL) = %q, %v, want \"x\", true", v, ok)
	}
	if _, ok := m.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) reported set")
	}
	if got := m.Get("MISSING"); got != "" {
		t.Errorf("Get(MISSING) = %q, want empty", got)
	}
}

func TestOSAndGet(t *testing.T) {
	t.Setenv("VisualStudioVersion", "17.0")
	if got := Get(OS{}, VisualStudioVersion); got != "17.0" {
		t.Errorf("Get(OS{}) = %q, want %q", got, "17.0")
	}
	if v, ok := (OS{}).Lookup("BUILDPROBE_SURELY_UNSET_VARIABLE"); ok {
		t.Errorf("Lookup(unset) = %q, true", v)
	}
	if got := Get(Map{"A": "b"}, "A"); got != "b" {
		t.Errorf("Get(Map) = %q, want %q", got, "b")
	}
}

func TestSnapshot(t *testing.T) {
	t.Setenv(CTestCommand, "ctest-custom")

	m := Snapshot()
	if got := m.Get(CTestCommand); got != "ctest-custom" {
		t.Errorf("Snapshot()[%s] = %q, want %q", CTestCommand, got, "ctest-custom")
	}

	// A snapshot does not follow later changes.
	t.Setenv(CTestCommand, "changed")
	if got := m.Get(CTestCommand); got != "ctest-custom" {
		t.Errorf("snapshot changed after Setenv: got %q", got)
	}
}
