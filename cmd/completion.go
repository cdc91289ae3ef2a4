package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: fmt.Sprintf(`Generate shell completion script for %[1]s.

Add the following to your shell's rc file:

  # Bash (~/.bashrc)
  source <(%[1]s completion bash)

  # Zsh (~/.zshrc)
  source <(%[1]s completion zsh)

  # Fish (~/.config/fish/config.fish)
  %[1]s completion fish | source

  # PowerShell
  %[1]s completion powershell | Out-String | Invoke-Expression`, name),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE:                  runCompletion,
	}
}

func runCompletion(c *cobra.Command, args []string) error {
	root := c.Root()
	out := c.OutOrStdout()
	switch args[0] {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	}
	return nil
}
