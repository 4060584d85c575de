// Package cli provides the Cobra command structure for tagcheck.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagcheck/internal/configloader"
	"github.com/yaklabco/tagcheck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tagcheck command with all subcommands.
// The root command itself checks the paths it is given.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "tagcheck [paths...]",
		Short: "Report unclosed and mismatched tags in HTML-like documents",
		Long: `tagcheck scans HTML, XHTML and other tag-based documents and reports
structural nesting defects: tags left open, closing tags with no matching
opener, and closing tags that do not match the most recently opened tag.

It is a fast lexical check, not a full HTML parser. Script and style bodies
and comments are ignored, void elements such as <br> and <img> need no
closing tag, and Markdown files are checked for their embedded HTML only.

A path named like a command (check, init, kinds, version) runs that command.
Check such a path with "tagcheck check -- <path>".` + environmentHelp(),
		Example: checkExamples,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addCheckFlags(rootCmd, flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp lists the TAGCHECK_* variables for the root help text.
func environmentHelp() string {
	var b strings.Builder
	b.WriteString("\n\nEnvironment:\n")
	for _, ev := range configloader.ListEnvVars() {
		fmt.Fprintf(&b, "  %-20s %s\n", ev.Name, ev.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
