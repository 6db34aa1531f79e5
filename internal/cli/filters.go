package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdforge/internal/ui/pretty"
	"github.com/yaklabco/mdforge/pkg/filter"
)

func newFiltersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the available placeholder filters",
		Long: `List the closed set of placeholder filters with their arguments and
defaults. Filters apply left to right inside a placeholder:

  {{ £title | uppercase | truncate = characters: 40 }}`,
		Run: func(cmd *cobra.Command, _ []string) {
			styles := pretty.NewStyles(colorEnabledStdout(cmd))
			table := pretty.NewFilterTable(styles, terminalWidth())
			fmt.Fprint(os.Stdout, table.Format(filter.Reference()))
		},
	}

	return cmd
}

// terminalWidth returns the stdout width, or 0 when stdout is not a
// terminal (the formatter falls back to its default).
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// colorEnabledStdout resolves the persistent --color flag against stdout.
func colorEnabledStdout(cmd *cobra.Command) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.IsColorEnabled(mode, os.Stdout)
}
