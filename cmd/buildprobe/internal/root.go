package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/goplus/buildprobe/internal/env"
	"github.com/goplus/buildprobe/pkgs/builddir"
	"github.com/goplus/buildprobe/pkgs/toolchain"
)

var verbose bool

// session is resolved once per invocation and shared by every subcommand.
type session struct {
	toolchain *toolchain.Toolchain
	inspector *builddir.Inspector
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "buildprobe",
	Short: "buildprobe inspects native build toolchains and build directories",
	Long: `buildprobe locates cmake, ctest, make, ninja, msbuild and xcodebuild, and
reports what a CMake build directory has been configured for.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
		current = newSession(env.Snapshot())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newSession(e env.Map) *session {
	r := &toolchain.Resolver{Env: e}
	tc := r.ResolveAll()
	tc.Each(func(k toolchain.Kind, res toolchain.Resolution) {
		if res.Found() {
			log.Debugf("resolved %v: %s (%v %s)", k, res.Path, res.Source, res.Name)
		} else {
			log.Debugf("resolved %v: not found", k)
		}
	})
	return &session{
		toolchain: tc,
		inspector: builddir.NewInspector(tc, e),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
