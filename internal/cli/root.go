// Package cli defines gix's cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gix",
		Short: "gix wraps everyday git history chores in guided workflows",
		Long: `gix wraps everyday git history chores in guided workflows.

It folds a range of commits into one, squashes the last few commits,
resets a branch to its remote, rebases onto the upstream and checks that
your environment is ready. Missing inputs are prompted for interactively.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output, including every git command")
	rootCmd.PersistentFlags().String("cwd", "", "Run git in this directory instead of the current one")
	_ = rootCmd.MarkPersistentFlagDirname("cwd")

	rootCmd.AddCommand(
		newMergeCmd(),
		newSquashCmd(),
		newResetCmd(),
		newRebaseCmd(),
		newDoctorCmd(),
	)

	return rootCmd
}
