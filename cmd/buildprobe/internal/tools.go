package internal

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goplus/buildprobe/pkgs/toolchain"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show the resolved build executables",
	Long: `Tools prints the path of every build executable and how it was found.
CMAKE_COMMAND and CTEST_COMMAND override the cmake and ctest lookups.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print JSON")
	rootCmd.AddCommand(toolsCmd)
}

type toolsReport struct {
	Tools               map[string]toolchain.Resolution `json:"tools"`
	VisualStudioVersion string                          `json:"visual_studio_version,omitempty"`
}

func runTools(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	vsv, hasVSV := current.inspector.VisualStudioVersion()

	if toolsJSON {
		report := toolsReport{
			Tools:               make(map[string]toolchain.Resolution),
			VisualStudioVersion: vsv,
		}
		current.toolchain.Each(func(k toolchain.Kind, res toolchain.Resolution) {
			report.Tools[k.String()] = res
		})
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	current.toolchain.Each(func(k toolchain.Kind, res toolchain.Resolution) {
		path := res.Path
		if !res.Found() {
			path = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", k, path, res.Source)
	})
	if err := w.Flush(); err != nil {
		return err
	}
	if hasVSV {
		fmt.Fprintf(out, "VisualStudioVersion=%s\n", vsv)
	}
	return nil
}
