package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagcheck/internal/logging"
	"github.com/yaklabco/tagcheck/pkg/config"
	"github.com/yaklabco/tagcheck/pkg/tagcheck"
)

const formatJSON = "json"

// kindInfo represents a diagnostic kind in JSON output.
type kindInfo struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func newKindsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List diagnostic kinds",
		Long: `List the diagnostic kinds tagcheck reports, with their descriptions and
default severity. Kind names are used under "kinds:" in the configuration
file and with --disable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatJSON:
				return outputKindsJSON(cmd.OutOrStdout())
			case "text", "":
				outputKindsText(cmd.OutOrStdout())
				return nil
			default:
				return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func outputKindsText(w io.Writer) {
	logger := logging.NewWithWriter(w, "info")
	for _, kind := range tagcheck.Kinds() {
		logger.Info(kind.String(),
			logging.FieldSeverity, config.SeverityError,
			logging.FieldDescription, kind.Description(),
		)
	}
}

// outputKindsJSON outputs kinds as a JSON array.
func outputKindsJSON(w io.Writer) error {
	kinds := tagcheck.Kinds()
	infos := make([]kindInfo, 0, len(kinds))
	for _, kind := range kinds {
		infos = append(infos, kindInfo{
			Kind:        kind.String(),
			Description: kind.Description(),
			Severity:    string(config.SeverityError),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding kinds: %w", err)
	}
	return nil
}
