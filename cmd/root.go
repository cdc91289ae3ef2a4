package cmd

import (
	"github.com/samzong/gma-cli/internal/workflow"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	autoYes bool
	dryRun  bool
}

func (g *generateOptions) register(c *cobra.Command) {
	c.Flags().BoolVarP(&g.autoYes, "yes", "y", false, "Skip confirmation and commit the generated message")
	c.Flags().BoolVar(&g.dryRun, "dry-run", false, "Generate message only, do not commit")
}

// RootCmd builds the gma command tree.
func RootCmd() *cobra.Command {
	opts := &globalOptions{}
	gen := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "gma",
		Short: "gma - AI-powered git commit message generator",
		Long: `gma stages every change in the repository, asks an OpenAI-compatible ` +
			`model for a Conventional Commits message and commits it after confirmation.`,
		Version: versionString(),
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return handleErrors(runGenerate(c, opts, gen))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	opts.register(rootCmd)
	gen.register(rootCmd)

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newConfigCmd(opts),
		newInitCmd(opts),
		newCompletionCmd("gma"),
		newVersionCmd("gma"),
	)
	return rootCmd
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	gen := &generateOptions{}
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate commit message and commit",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return handleErrors(runGenerate(c, opts, gen))
		},
	}
	gen.register(generateCmd)
	return generateCmd
}

func runGenerate(c *cobra.Command, opts *globalOptions, gen *generateOptions) error {
	a, err := newApp(c, opts)
	if err != nil {
		return err
	}

	gitClient, err := a.gitClient(c.OutOrStdout(), c.ErrOrStderr())
	if err != nil {
		return err
	}

	flow := workflow.NewCommitFlow(gitClient, gitClient, a.llmClient(), a.cfg, workflow.CommitOptions{
		AutoYes:   gen.autoYes,
		DryRun:    gen.dryRun,
		OutWriter: c.OutOrStdout(),
		ErrWriter: c.ErrOrStderr(),
		Logger:    a.logger,
	})
	flow.SetPrompter(&workflow.InteractivePrompter{ErrWriter: c.ErrOrStderr(), Stdin: c.InOrStdin()})
	return flow.Run(c.Context())
}
