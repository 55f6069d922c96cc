// Package toolchain locates the native build executables (cmake, ctest, make,
// ninja, msbuild, xcodebuild) on the search path.
//
// Resolution honors an optional environment variable override before
// falling back to an ordered list of candidate names. A tool that cannot be
// found is not an error: it resolves to a Resolution whose Source is
// NotFound, and callers check Found before using the path.
package toolchain

import (
	"path/filepath"

	"golang.org/x/sys/execabs"

	"github.com/goplus/buildprobe/internal/env"
)

// Kind identifies one of the supported build executables.
type Kind int

const (
	CMake Kind = iota
	CTest
	Make
	Ninja
	MSBuild
	XcodeBuild

	numKinds
)

var kindNames = [numKinds]string{
	CMake:      "cmake",
	CTest:      "ctest",
	Make:       "make",
	Ninja:      "ninja",
	MSBuild:    "msbuild",
	XcodeBuild: "xcodebuild",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Tool describes how to locate one executable.
type Tool struct {
	Kind Kind
	// EnvVar names the variable whose value overrides Candidates. Empty
	// means the tool has no override.
	EnvVar string
	// Candidates are tried in order on the search path.
	Candidates []string
}

var tools = [numKinds]Tool{
	{Kind: CMake, EnvVar: env.CMakeCommand, Candidates: []string{"cmake3", "cmake"}},
	{Kind: CTest, EnvVar: env.CTestCommand, Candidates: []string{"ctest3", "ctest"}},
	{Kind: Make, Candidates: []string{"make"}},
	{Kind: Ninja, Candidates: []string{"ninja"}},
	{Kind: MSBuild, Candidates: []string{"msbuild"}},
	{Kind: XcodeBuild, Candidates: []string{"xcodebuild"}},
}

// Tools returns the fixed lookup table, ordered by Kind.
func Tools() []Tool {
	out := make([]Tool, 0, numKinds)
	for _, t := range tools {
		t.Candidates = append([]string(nil), t.Candidates...)
		out = append(out, t)
	}
	return out
}

// Source records which step of the lookup produced a Resolution.
type Source int

const (
	NotFound Source = iota
	Override
	Candidate
)

func (s Source) String() string {
	switch s {
	case Override:
		return "override"
	case Candidate:
		return "candidate"
	}
	return "not found"
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is the outcome of locating one executable.
type Resolution struct {
	// Path is absolute, or empty when Source is NotFound.
	Path   string `json:"path,omitempty"`
	Source Source `json:"source"`
	// Name is the override value or candidate name that matched.
	Name string `json:"name,omitempty"`
}

// Found reports whether the executable was located.
func (r Resolution) Found() bool {
	return r.Source != NotFound
}

// Resolver looks executables up against an environment and a search path.
// The zero value uses the process environment and execabs.LookPath.
type Resolver struct {
	Env      env.Env
	LookPath func(file string) (string, error)
}

// Resolve locates an executable. If envVar is non-empty and set to a
// non-empty value, that value is looked up first and returned when it
// resolves. Otherwise each candidate is tried in order.
func (r *Resolver) Resolve(envVar string, candidates ...string) Resolution {
	if envVar != "" {
		if name := r.getenv(envVar); name != "" {
			if path, ok := r.lookPath(name); ok {
				return Resolution{Path: path, Source: Override, Name: name}
			}
		}
	}
	for _, name := range candidates {
		if path, ok := r.lookPath(name); ok {
			return Resolution{Path: path, Source: Candidate, Name: name}
		}
	}
	return Resolution{}
}

// ResolveTool locates t using its override variable and candidates.
func (r *Resolver) ResolveTool(t Tool) Resolution {
	return r.Resolve(t.EnvVar, t.Candidates...)
}

// ResolveAll locates every known tool.
func (r *Resolver) ResolveAll() *Toolchain {
	tc := &Toolchain{}
	for _, t := range tools {
		tc.res[t.Kind] = r.ResolveTool(t)
	}
	return tc
}

func (r *Resolver) getenv(key string) string {
	if r.Env == nil {
		return env.Get(env.OS{}, key)
	}
	return env.Get(r.Env, key)
}

func (r *Resolver) lookPath(name string) (string, bool) {
	look := r.LookPath
	if look == nil {
		look = execabs.LookPath
	}
	path, err := look(name)
	if err != nil || path == "" {
		return "", false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, true
}

// Toolchain holds the resolved executables. Build it once with
// Resolver.ResolveAll and pass it to whatever needs a tool path.
type Toolchain struct {
	res [numKinds]Resolution
}

// Get returns the resolution for k. Unknown kinds report NotFound.
func (tc *Toolchain) Get(k Kind) Resolution {
	if tc == nil || k < 0 || k >= numKinds {
		return Resolution{}
	}
	return tc.res[k]
}

// Path returns the absolute path of k and whether it was found.
func (tc *Toolchain) Path(k Kind) (string, bool) {
	r := tc.Get(k)
	return r.Path, r.Found()
}

// Each calls fn for every tool in Kind order.
func (tc *Toolchain) Each(fn func(Kind, Resolution)) {
	for k := Kind(0); k < numKinds; k++ {
		fn(k, tc.Get(k))
	}
}

// With returns a copy of tc with k set to res.
func (tc *Toolchain) With(k Kind, res Resolution) *Toolchain {
	out := &Toolchain{}
	if tc != nil {
		out.res = tc.res
	}
	if k >= 0 && k < numKinds {
		out.res[k] = res
	}
	return out
}
