package builddir

import (
	"context"

	"github.com/goplus/buildprobe/internal/env"
	"github.com/goplus/buildprobe/pkgs/buildsys"
	"github.com/goplus/buildprobe/pkgs/toolchain"
)

// State describes a build directory at the moment it was inspected.
type State struct {
	Dir     string           `json:"dir"`
	Markers buildsys.Markers `json:"markers"`
	Backend buildsys.Backend `json:"backend"`
	// SolutionPath and ProjectPath are where the Visual Studio generator
	// would write its files. They are empty when no package or target was
	// given and are never checked for existence.
	SolutionPath string          `json:"solution_path,omitempty"`
	ProjectPath  string          `json:"project_path,omitempty"`
	BuildType    BuildTypeResult `json:"build_type"`
}

// Inspector answers questions about build directories using a resolved
// toolchain and an environment. A nil Env reads the process environment.
type Inspector struct {
	Toolchain *toolchain.Toolchain
	Env       env.Env
}

// NewInspector returns an Inspector for tc and e.
func NewInspector(tc *toolchain.Toolchain, e env.Env) *Inspector {
	return &Inspector{Toolchain: tc, Env: e}
}

// Inspect gathers the state of dir. pkg and target name the Visual Studio
// solution and project; either may be empty. cmakeArgs are the configure
// arguments the caller would pass, consulted before the cache for the build
// type.
func (i *Inspector) Inspect(dir, pkg, target string, cmakeArgs []string) State {
	st := State{
		Dir:       dir,
		Markers:   DetectMarkers(dir),
		BuildType: ResolveBuildType(cmakeArgs, dir),
	}
	st.Backend = buildsys.Detect(st.Markers)
	if pkg != "" {
		st.SolutionPath = SolutionPath(dir, pkg)
	}
	if target != "" {
		st.ProjectPath = ProjectPath(dir, target)
	}
	return st
}

// HasMakeTarget reports whether target is defined by the Makefile in dir,
// using the toolchain's make. A missing make is ErrMakeNotFound.
func (i *Inspector) HasMakeTarget(ctx context.Context, dir, target string) (bool, error) {
	makePath, _ := i.Toolchain.Path(toolchain.Make)
	return HasMakeTarget(ctx, makePath, dir, target)
}

// MakeTargets lists the targets defined by the Makefile in dir.
func (i *Inspector) MakeTargets(ctx context.Context, dir string) ([]string, error) {
	makePath, _ := i.Toolchain.Path(toolchain.Make)
	return MakeTargets(ctx, makePath, dir)
}

// VisualStudioVersion returns the VisualStudioVersion variable verbatim.
func (i *Inspector) VisualStudioVersion() (string, bool) {
	e := i.Env
	if e == nil {
		e = env.OS{}
	}
	return e.Lookup(env.VisualStudioVersion)
}
