package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var targetList bool

var hasTargetCmd = &cobra.Command{
	Use:   "has-target <dir> [target]",
	Short: "Check whether a Makefile defines a target",
	Long: `Has-target runs "make -pn" in dir and prints whether target is defined.
With --list it prints every defined target instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runHasTarget,
}

func init() {
	hasTargetCmd.Flags().BoolVarP(&targetList, "list", "l", false, "List all targets")
	rootCmd.AddCommand(hasTargetCmd)
}

func runHasTarget(cmd *cobra.Command, args []string) error {
	if !targetList && len(args) != 2 {
		return fmt.Errorf("has-target needs a target name unless --list is given")
	}
	dir := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if targetList {
		targets, err := current.inspector.MakeTargets(ctx, dir)
		if err != nil {
			return fmt.Errorf("failed to list make targets: %w", err)
		}
		for _, t := range targets {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	}

	target := args[1]
	ok, err := current.inspector.HasMakeTarget(ctx, dir, target)
	if err != nil {
		return fmt.Errorf("failed to query make target %s: %w", target, err)
	}
	log.Debugf("make target %s in %s: %v", target, dir, ok)
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
