package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ffimg.

To load completions:

Bash:
  $ source <(ffimg completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ffimg completion bash > /etc/bash_completion.d/ffimg
  # macOS:
  $ ffimg completion bash > $(brew --prefix)/etc/bash_completion.d/ffimg

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ffimg completion zsh > "${fpath[1]}/_ffimg"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ ffimg completion fish | source

  # To load completions for each session, execute once:
  $ ffimg completion fish > ~/.config/fish/completions/ffimg.fish

PowerShell:
  PS> ffimg completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> ffimg completion powershell > ffimg.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeSpecFiles completes the spec file argument.
func completeSpecFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeImageFiles completes the --output flag.
func completeImageFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp"}, cobra.ShellCompDirectiveFilterFileExt
}
