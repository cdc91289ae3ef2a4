package cmd

import (
	"github.com/samzong/gma-cli/internal/workflow"
	"github.com/spf13/cobra"
)

type branchOptions struct {
	fix     bool
	message string
}

// BranchRootCmd builds the gmm command tree.
func BranchRootCmd() *cobra.Command {
	opts := &globalOptions{}
	bo := &branchOptions{}

	rootCmd := &cobra.Command{
		Use:   "gmm",
		Short: "gmm - create feature and hotfix branches",
		Long: `gmm refreshes the base branch and creates feature/<prefix>-<suffix> or ` +
			`hotfix/<prefix>-<suffix> from it. The suffix is today's MMDD, or a name ` +
			`generated from the --message description.`,
		Version: versionString(),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runBranch(c, opts, bo)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts.register(rootCmd)
	rootCmd.Flags().BoolVarP(&bo.fix, "fix", "f", false, "Create a hotfix branch")
	rootCmd.Flags().StringVarP(&bo.message, "message", "m", "", "Description to generate branch name from")

	rootCmd.AddCommand(
		newBranchConfigCmd(opts),
		newCompletionCmd("gmm"),
		newVersionCmd("gmm"),
	)
	return rootCmd
}

func runBranch(c *cobra.Command, opts *globalOptions, bo *branchOptions) error {
	a, err := newApp(c, opts)
	if err != nil {
		return err
	}

	gitClient, err := a.gitClient(c.OutOrStdout(), c.ErrOrStderr())
	if err != nil {
		return err
	}

	flow := workflow.NewBranchFlow(gitClient, a.llmClient(), a.cfg, workflow.BranchOptions{
		Fix:         bo.fix,
		Description: bo.message,
		ErrWriter:   c.ErrOrStderr(),
		Logger:      a.logger,
	})
	_, err = flow.Run(c.Context())
	return err
}
