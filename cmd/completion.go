// Package cmd provides the CLI commands for timex.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/timex"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for timex.

To load completions:

Bash:
  $ source <(timex completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ timex completion bash > /etc/bash_completion.d/timex
  # macOS:
  $ timex completion bash > $(brew --prefix)/etc/bash_completion.d/timex

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ timex completion zsh > "${fpath[1]}/_timex"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ timex completion fish | source

  # To load completions for each session, execute once:
  $ timex completion fish > ~/.config/fish/completions/timex.fish

PowerShell:
  PS> timex completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
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

// completeExpressions offers one example of each expression shape.
func completeExpressions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, ex := range parser.ExpressionExamples {
		if strings.HasPrefix(ex, toComplete) {
			completions = append(completions, ex+"\t"+timex.Convert(timex.Parse(ex)))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeReferences offers example --ref values.
func completeReferences(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, ex := range parser.ReferenceExamples {
		if strings.HasPrefix(ex, toComplete) {
			completions = append(completions, ex)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
