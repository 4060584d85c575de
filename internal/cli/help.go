package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/tagcheck/internal/ui/pretty"
)

// HelpFormatter renders cobra help and usage text with the output styles.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode and writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	s := h.styles
	return template.FuncMap{
		"heading":      func(text string) string { return s.Render(s.Bold, text) },
		"command":      func(text string) string { return s.Render(s.FilePath, text) },
		"subcommand":   func(text string) string { return s.Render(s.KindID, text) },
		"dim":          func(text string) string { return s.Render(s.Dim, text) },
		"flags":        h.flagUsages,
		"rpad":         rpad,
		"join":         strings.Join,
		"trimTrailing": trimTrailingWhitespace,
	}
}

// flagUsages styles the flag names in pflag's usage block. Column alignment
// is left to pflag; only the leading flag tokens on each line are styled.
func (h *HelpFormatter) flagUsages(set *pflag.FlagSet) string {
	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if !h.styles.ColorEnabled() {
		return usages
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	// The flag names end at the first gap of two spaces.
	end := strings.Index(trimmed, "  ")
	if end < 0 {
		end = len(trimmed)
	}

	var b strings.Builder
	b.WriteString(indent)
	for i, token := range strings.Split(trimmed[:end], " ") {
		if i > 0 {
			b.WriteByte(' ')
		}
		name, comma := strings.CutSuffix(token, ",")
		if strings.HasPrefix(name, "-") {
			b.WriteString(h.styles.Render(h.styles.KindID, name))
		} else {
			b.WriteString(h.styles.Render(h.styles.Dim, name))
		}
		if comma {
			b.WriteByte(',')
		}
	}
	b.WriteString(trimmed[end:])
	return b.String()
}

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit them from the root.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, width int) string {
	if len(str) >= width {
		return str
	}
	return str + strings.Repeat(" ", width-len(str))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
