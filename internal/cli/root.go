// Package cli implements the frnm command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/frnm/internal/engine"
	"github.com/danieljhkim/frnm/internal/fsops"
)

var (
	// Global flags
	substChar      string
	recursive      bool
	quiet          bool
	suppressErrors bool

	// Color for help output section titles
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// errSkipped marks a run that finished but passed over entries under
// --suppress-errors; the warning is already printed, only the exit code
// needs to reflect it.
var errSkipped = errors.New("entries were skipped")

// rootCmd is the root command for frnm.
var rootCmd = &cobra.Command{
	Use:     "frnm [flags] PATH...",
	Version: "dev",
	Short:   "Rename files and folders to conventional names",
	Long: `frnm renames files and folders by replacing runs of unconventional
characters in their names with a substitution character. Characters in the
set -._0-9a-zA-Z are considered conventional; anything else is replaced.

frnm will not rename a file when:
  - its name is already conventional, i.e. it contains none of the
    excluded characters, or
  - its name stripped of the extension is made up entirely of excluded
    characters.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		notices := io.Writer(os.Stdout)
		if quiet {
			notices = io.Discard
		}
		eng := engine.New(fsops.NewRealFS(), notices)

		result, err := eng.Run(&engine.Request{
			Char:           substChar,
			Paths:          args,
			Recursive:      recursive,
			SuppressErrors: suppressErrors,
		})
		if err != nil {
			return err
		}

		if n := len(result.Skipped); n > 0 {
			PrintWarning(fmt.Sprintf("Skipped %s", PrintCount(n, "entry", "entries")))
			return errSkipped
		}
		return nil
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	// Build complete help output
	var help strings.Builder

	// Add long description if present
	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	// Add usage
	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	// Add subcommands
	hasCommands := false
	for _, c := range cmd.Commands() {
		if !c.Hidden {
			if !hasCommands {
				help.WriteString(sectionTitleColor.Sprint("Available Commands:"))
				help.WriteString("\n")
				hasCommands = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasCommands {
		help.WriteString("\n")
	}

	// Add flags
	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	// Add usage footer
	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	// Set custom help function to color section titles
	rootCmd.SetHelpFunc(customHelpFunc)

	rootCmd.Flags().StringVarP(&substChar, "char", "c", "_", "The substitution character")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Rename recursively, renaming the deepest entries of a folder first")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the rename of each file")
	rootCmd.Flags().BoolVarP(&suppressErrors, "suppress-errors", "s", false, "Skip entries that cannot be renamed instead of aborting; exit non-zero if any were skipped")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the frnm version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: `Generate the autocompletion script for frnm for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(os.Stdout, true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		},
	})
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSkipped) {
			PrintError(fmt.Sprintf("Error: %v", err))
		}
		return 1
	}
	return 0
}
