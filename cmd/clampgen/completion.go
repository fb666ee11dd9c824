package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion scripts",
	Long: `Generate shell completion scripts for clampgen commands and flags.

Load completions for the current shell session:

  bash:       source <(clampgen completion bash)
  zsh:        source <(clampgen completion zsh)
  fish:       clampgen completion fish | source
  powershell: clampgen completion powershell | Out-String | Invoke-Expression

To load them for every session, write the script to your shell's completion
directory, for example:

  clampgen completion bash > /etc/bash_completion.d/clampgen
  clampgen completion zsh > "${fpath[1]}/_clampgen"
  clampgen completion fish > ~/.config/fish/completions/clampgen.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}
