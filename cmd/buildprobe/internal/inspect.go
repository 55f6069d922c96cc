package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/goplus/buildprobe/pkgs/builddir"
)

var (
	inspectPackage   string
	inspectTarget    string
	inspectCMakeArgs []string
	inspectJSON      bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "Describe a CMake build directory",
	Long: `Inspect reports which generated files exist in a build directory, the
backend it was configured for and its build type. The directory defaults to
the current one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectPackage, "package", "p", "", "Package name for the Visual Studio solution path")
	inspectCmd.Flags().StringVarP(&inspectTarget, "target", "t", "", "Target name for the Visual Studio project path")
	inspectCmd.Flags().StringArrayVar(&inspectCMakeArgs, "cmake-arg", nil, "Configure argument, may be repeated")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	st := current.inspector.Inspect(abs, inspectPackage, inspectTarget, inspectCMakeArgs)
	log.Debugf("inspected %s: %+v", abs, st)

	if inspectJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	printState(cmd.OutOrStdout(), st)
	return nil
}

func printState(w io.Writer, st builddir.State) {
	fmt.Fprintf(w, "dir: %s\n", st.Dir)
	fmt.Fprintf(w, "configured: %v\n", st.Markers.Configured())
	fmt.Fprintf(w, "backend: %v\n", st.Backend)
	if kind, ok := st.Backend.Tool(); ok {
		if path, found := current.toolchain.Path(kind); found {
			fmt.Fprintf(w, "backend tool: %s\n", path)
		} else {
			fmt.Fprintf(w, "backend tool: %v not found\n", kind)
		}
	}
	fmt.Fprintf(w, "%s: %v\n", builddir.CMakeCacheFile, st.Markers.CMakeCache)
	fmt.Fprintf(w, "%s: %v\n", builddir.MakefileFile, st.Markers.Makefile)
	fmt.Fprintf(w, "%s: %v\n", builddir.NinjaBuildFile, st.Markers.NinjaBuild)
	if st.SolutionPath != "" {
		fmt.Fprintf(w, "solution: %s\n", st.SolutionPath)
	}
	if st.ProjectPath != "" {
		fmt.Fprintf(w, "project: %s\n", st.ProjectPath)
	}
	fmt.Fprintf(w, "build type: %s (%v)\n", st.BuildType.Value, st.BuildType.Source)
}
