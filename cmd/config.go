package cmd

import (
	"fmt"
	"strings"

	"github.com/samzong/gma-cli/internal/config"
	"github.com/samzong/gma-cli/internal/gitutil"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config <key> [value]",
		Short: "Get or set configuration",
		Long: "Get or set configuration. \"true\" and \"false\" are stored as booleans.\n\n" +
			"Keys:\n" + describeKeys(),
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(c *cobra.Command, args []string) error {
			a, err := newApp(c, opts)
			if err != nil {
				return err
			}

			key := args[0]
			if len(args) == 1 {
				value, err := a.store.Get(key)
				if err != nil {
					return err
				}
				printSetting(c.OutOrStdout(), key, value)
				return nil
			}

			value, err := a.store.Set(key, args[1])
			if err != nil {
				return err
			}
			a.logger.Debug("configuration updated", "key", key, "path", a.store.Path())
			printUpdated(c.OutOrStdout(), key, value)
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := newApp(c, opts)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", a.store.Path())
			for _, key := range config.Keys() {
				value, err := a.store.Get(key)
				if err != nil {
					return err
				}
				if key == config.KeyAPIKey {
					value = maskSecret(fmt.Sprint(value))
				}
				printSetting(out, key, value)
			}
			return nil
		},
	})
	return configCmd
}

func describeKeys() string {
	var b strings.Builder
	for _, s := range config.Schema() {
		fmt.Fprintf(&b, "  %-12s %-7s %s (env %s)\n", s.Key, s.Kind, s.Description, s.Env)
	}
	return b.String()
}

func newBranchConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configure gmm",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "setPrefix <prefix>",
			Short: "Set the branch prefix",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return setBranchSetting(c, opts, config.KeyPrefix, args[0])
			},
		},
		&cobra.Command{
			Use:   "setBaseBranch <branch>",
			Short: "Set the branch new branches are created from",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				if err := gitutil.ValidateBranchName(args[0]); err != nil {
					return err
				}
				return setBranchSetting(c, opts, config.KeyBaseBranch, args[0])
			},
		},
	)
	return configCmd
}

func setBranchSetting(c *cobra.Command, opts *globalOptions, key, value string) error {
	a, err := newApp(c, opts)
	if err != nil {
		return err
	}
	stored, err := a.store.SetString(key, value)
	if err != nil {
		return err
	}
	printUpdated(c.OutOrStdout(), key, stored)
	return nil
}
