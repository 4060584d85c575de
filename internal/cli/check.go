package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagcheck/internal/configloader"
	"github.com/yaklabco/tagcheck/internal/logging"
	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/reporter"
	"github.com/yaklabco/tagcheck/pkg/runner"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

type checkFlags struct {
	format     string
	jobs       int
	ignore     []string
	extensions []string
	encoding   string
	markdown   string
	disable    []string
	compact    bool
	noSummary  bool
	follow     bool
}

const checkExamples = `  tagcheck index.html             Check a single file
  tagcheck site/                  Check every .html, .htm and .xhtml file under site/
  tagcheck --ext .vue,.html src/  Choose which extensions are picked up in directories
  tagcheck --markdown always docs Check the HTML embedded in Markdown files
  tagcheck --format sarif .       Emit SARIF for code scanning
  tagcheck --disable unclosed .   Suppress one diagnostic kind
  tagcheck check -- version       Check a path that shares a command name`

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Short:   "Check files for tag nesting defects",
		Long:    `Check files and directories for unclosed and mismatched tags.`,
		Example: checkExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	formats := make([]string, 0, len(reporter.Formats()))
	for _, f := range reporter.Formats() {
		formats = append(formats, f.String())
	}
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: "+strings.Join(formats, ", "))
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"extensions picked up in directories (default .html,.htm,.xhtml)")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "encoding for files without a byte order mark (default utf-8)")
	cmd.Flags().StringVar(&flags.markdown, "markdown", "", "Markdown handling: auto, always, never (default auto)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "diagnostic kinds to suppress")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON and SARIF output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line after multi-file text output")
}

// cliConfig builds the configuration overrides for the flags the user set.
func (f *checkFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cfg.Format = config.OutputFormat(format)
	}
	if changed("jobs") {
		if f.jobs < 0 {
			return nil, fmt.Errorf("%w: --jobs must be >= 0, got %d", ErrUsage, f.jobs)
		}
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("ext") {
		cfg.Extensions = normalizeExtensions(f.extensions)
	}
	if changed("encoding") {
		cfg.Encoding = f.encoding
	}
	if changed("markdown") {
		cfg.Markdown = f.markdown
	}
	if changed("disable") {
		for _, name := range f.disable {
			if _, err := tagcheck.ParseKind(name); err != nil {
				return nil, fmt.Errorf("%w: --disable: %w", ErrUsage, err)
			}
		}
		cfg.DisableKinds = f.disable
	}
	if changed("follow-symlinks") {
		follow := f.follow
		cfg.FollowSymlinks = &follow
	}
	if color, err := cmd.Flags().GetString("color"); err == nil && cmd.Flags().Changed("color") {
		cfg.Color = color
	}

	return cfg, nil
}

// applyExplicit re-applies flags whose zero value is meaningful. Merging
// treats zero as unset, so "--jobs 0" would otherwise lose to a configured
// worker count.
func (f *checkFlags) applyExplicit(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
}

// normalizeExtensions adds the leading dot users often leave out.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext != "" && ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
		return fmt.Errorf("%w: no paths given", ErrUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return err
	}

	cfg := loadResult.Config
	flags.applyExplicit(cmd, cfg)

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration resolved",
		logging.FieldEncoding, cfg.Encoding,
		logging.FieldMarkdown, cfg.Markdown,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	runOpts := runner.OptionsFromConfig(cfg, args, workDir)

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New(runner.NewFileChecker(cfg)).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	if result.HasErrors() {
		for _, file := range result.Files {
			if file.Error != nil {
				logger.Error("cannot check file", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			}
		}
		return fmt.Errorf("%d of %d files could not be checked: %w",
			result.Stats.FilesErrored, result.Stats.FilesDiscovered, result.FirstError())
	}

	if result.HasIssues() {
		return ErrIssuesFound
	}

	return nil
}
