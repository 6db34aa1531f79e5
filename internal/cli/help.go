package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/mdforge/internal/ui/pretty"
)

// HelpFormatter replaces Cobra's plain help and usage templates with
// lipgloss-styled equivalents, honoring the --color flag and NO_COLOR.
type HelpFormatter struct {
	heading    lipgloss.Style
	command    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	example    lipgloss.Style
	dim        lipgloss.Style
}

// NewHelpFormatter creates a help formatter. Color is resolved against the
// writer the help text will be printed to.
func NewHelpFormatter(colorMode string, w io.Writer) *HelpFormatter {
	if !pretty.IsColorEnabled(colorMode, w) {
		plain := lipgloss.NewStyle()
		return &HelpFormatter{
			heading:    plain,
			command:    plain,
			subcommand: plain,
			flag:       plain,
			example:    plain,
			dim:        plain,
		}
	}
	return &HelpFormatter{
		heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const helpUsageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flagUsages .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flagUsages .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ trim . }}

{{end}}` + helpUsageTemplate

// ApplyToCommand installs the styled help and usage functions on cmd.
// Subcommands inherit both through Cobra's parent lookup.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"heading":    h.heading.Render,
		"command":    h.command.Render,
		"subcommand": h.subcommand.Render,
		"example":    h.example.Render,
		"dim":        h.dim.Render,
		"flagUsages": h.flagUsages,
		"rpad":       rpad,
		"trim":       trimTrailingSpaces,
		"join":       strings.Join,
	}

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		t, err := template.New("usage").Funcs(funcs).Parse(helpUsageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return t.Execute(c.OutOrStdout(), c)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		t, err := template.New("help").Funcs(funcs).Parse(helpTemplate)
		if err != nil {
			c.PrintErrln(err)
			return
		}
		if err := t.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// flagUsages restyles pflag's aligned usage block: flag names in the flag
// style, value types dimmed, descriptions untouched.
func (h *HelpFormatter) flagUsages(fs *pflag.FlagSet) string {
	usages := strings.TrimSuffix(fs.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine restyles one "  -t, --template string   description" line.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	def, desc, ok := splitUsageLine(trimmed)
	if !ok {
		return line
	}

	indent := strings.Repeat(" ", len(line)-len(trimmed))
	return indent + h.styleFlagDef(def) + "   " + desc
}

// splitUsageLine splits a flag usage line into the flag definition and its
// description, separated by a run of two or more spaces.
func splitUsageLine(line string) (def, desc string, ok bool) {
	for i := 0; i+1 < len(line); i++ {
		if line[i] != ' ' || line[i+1] != ' ' {
			continue
		}
		j := i
		for j < len(line) && line[j] == ' ' {
			j++
		}
		if j < len(line) {
			return strings.TrimRight(line[:i], " "), line[j:], true
		}
	}
	return "", "", false
}

// styleFlagDef styles the tokens of a flag definition: dash-prefixed names
// in the flag style, value types dimmed.
func (h *HelpFormatter) styleFlagDef(def string) string {
	tokens := strings.Fields(def)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name := strings.TrimSuffix(token, ",")
			styled := h.flag.Render(name)
			if name != token {
				styled += ","
			}
			tokens[i] = styled
			continue
		}
		tokens[i] = h.dim.Render(token)
	}
	return strings.Join(tokens, " ")
}

// rpad right-pads a string to the given width.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimTrailingSpaces strips trailing whitespace from every line.
func trimTrailingSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
