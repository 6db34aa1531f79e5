package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdforge/internal/logging"
	"github.com/yaklabco/mdforge/pkg/config"
	"github.com/yaklabco/mdforge/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdforge configuration file",
		Long: `Create a new .mdforge.yaml configuration file in the current directory
with sensible defaults.

Examples:
  mdforge init                    Create .mdforge.yaml
  mdforge init --output custom.yaml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdforge.yaml)")

	return cmd
}

const configHeader = `# mdforge configuration.
# flavor:    markdown flavor for the markdown filter (commonmark or gfm)
# template:  default HTML template used by mdforge build
# out_dir:   directory for rendered .html files (empty = alongside sources)
# sanitize:  pipe rendered documents through an HTML sanitizer
# log_level: debug, info, warn, or error`

func runInit(flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".mdforge.yaml"
	}

	if !flags.force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists: use --force to overwrite", outputPath)
		}
	}

	data, err := config.Default().ToYAMLWithHeader(configHeader)
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(outputPath, data); err != nil {
		return err
	}

	logger.Info("wrote configuration", logging.FieldPath, outputPath)
	return nil
}
