package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/tagcheck/internal/configloader"
	"github.com/yaklabco/tagcheck/internal/logging"
	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a tagcheck configuration file",
		Long: `Create a commented .tagcheck.yml in the current directory.

If the file already exists you are asked before it is replaced when running
in a terminal; otherwise pass --force.

Examples:
  tagcheck init                      Create a minimal .tagcheck.yml
  tagcheck init --full               Document every diagnostic kind
  tagcheck init --output site.yml    Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags, cmd.InOrStdin(), cmd.ErrOrStderr(), stdinIsTerminal(cmd.InOrStdin()))
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every diagnostic kind with its defaults")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .tagcheck.yml)")

	return cmd
}

// stdinIsTerminal reports whether in is an interactive terminal.
func stdinIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runInit(ctx context.Context, flags *initFlags, in io.Reader, prompt io.Writer, interactive bool) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) && !flags.force {
		if !interactive {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		ok, err := confirm(in, prompt, fmt.Sprintf("%s already exists. Overwrite? [y/N] ", outputPath))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'tagcheck kinds' to see the diagnostic kinds you can configure")

	return nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := io.WriteString(out, question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
