// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"context"

	"github.com/spf13/cobra"

	"gix.dev/gix/internal/config"
	"gix.dev/gix/internal/git"
)

// CompleteRefs is a helper for RegisterFlagCompletionFunc that returns local
// and remote-tracking branch names.
func CompleteRefs(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	workDir, _ := cmd.Flags().GetString("cwd")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client := git.NewClient(git.NewCommandRunner(cfg.GitBinary, git.WithWorkingDir(workDir)))
	refs, err := client.Refs(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return refs, cobra.ShellCompDirectiveNoFileComp
}
