package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionShell ist gesetzt wenn --completion angegeben wurde.
// Ein Unterbefehl "completion" würde das Pattern "completion" verdecken.
var completionShell string

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func init() {
	rootCmd.Flags().StringVar(&completionShell, "completion", "", `Generate shell completion script (bash, zsh, fish, powershell)

  $ source <(trunc --completion bash)
  $ trunc --completion zsh > "${fpath[1]}/_trunc"
  $ trunc --completion fish > ~/.config/fish/completions/trunc.fish`)
}

// writeCompletion schreibt das Completion-Script für die gewünschte Shell.
// root wird übergeben: rootCmd selbst zu lesen ergäbe einen Initialisierungszyklus über runRoot.
func writeCompletion(root *cobra.Command, out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(out)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	}
	return fmt.Errorf("unsupported shell %q (valid: %v)", shell, completionShells)
}
