package buildsys

import (
	"testing"

	"github.com/goplus/buildprobe/pkgs/toolchain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		markers Markers
		want    Backend
	}{
		{"empty", Markers{}, Unknown},
		{"cache only", Markers{CMakeCache: true}, Unknown},
		{"makefile", Markers{CMakeCache: true, Makefile: true}, Make},
		{"ninja", Markers{CMakeCache: true, NinjaBuild: true}, Ninja},
		{"both prefers ninja", Markers{Makefile: true, NinjaBuild: true}, Ninja},
		{"makefile without cache", Markers{Makefile: true}, Make},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.markers); got != tt.want {
				t.Errorf("Detect(%+v) = %v, want %v", tt.markers, got, tt.want)
			}
		})
	}
}

func TestBackendTool(t *testing.T) {
	tests := []struct {
		b      Backend
		want   toolchain.Kind
		wantOK bool
	}{
		{Make, toolchain.Make, true},
		{Ninja, toolchain.Ninja, true},
		{MSBuild, toolchain.MSBuild, true},
		{Xcode, toolchain.XcodeBuild, true},
		{Unknown, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.b.Tool()
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("%v.Tool() = %v, %v, want %v, %v", tt.b, got, ok, tt.want, tt.wantOK)
		}
		if tt.wantOK && tt.b.String() != tt.want.String() {
			t.Errorf("%v.String() = %q, want %q", tt.b, tt.b.String(), tt.want.String())
		}
	}
	if Unknown.String() != "unknown" {
		t.Errorf("Unknown.String() = %q", Unknown.String())
	}
}

func TestConfigured(t *testing.T) {
	if (Markers{Makefile: true}).Configured() {
		t.Error("Makefile alone reported configured")
	}
	if !(Markers{CMakeCache: true}).Configured() {
		t.Error("CMakeCache.txt not reported configured")
	}
}
