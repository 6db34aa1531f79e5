package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdforge/internal/configloader"
	"github.com/yaklabco/mdforge/internal/logging"
	"github.com/yaklabco/mdforge/internal/ui/pretty"
	"github.com/yaklabco/mdforge/pkg/config"
	"github.com/yaklabco/mdforge/pkg/document"
	"github.com/yaklabco/mdforge/pkg/fsutil"
	"github.com/yaklabco/mdforge/pkg/markdown"
	"github.com/yaklabco/mdforge/pkg/render"
	"github.com/yaklabco/mdforge/pkg/scan"
	"github.com/yaklabco/mdforge/pkg/template"
)

// ErrBuildFailed is returned when one or more documents failed to render.
var ErrBuildFailed = errors.New("build failed")

type buildFlags struct {
	template string
	outDir   string
	flavor   string
	sanitize bool
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build <markdown-file>...",
		Short: "Render Markdown documents against an HTML template",
		Long:  buildLongDescription,
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "HTML template file")
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "directory for rendered .html files")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.sanitize, "sanitize", false, "sanitize rendered HTML output")

	return cmd
}

const buildLongDescription = `Render Markdown documents against an HTML template.

Each document is parsed for an optional metadata block, a title, and a body;
the template's {{ £variable | filter }} placeholders are then resolved and
substituted. Output files take the document's base name with an .html
extension.

Examples:
  mdforge build post.md --template page.html
  mdforge build posts/*.md -t page.html -o public/
  mdforge build post.md -t page.html --sanitize`

func runBuild(cmd *cobra.Command, args []string, flags *buildFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	if cfg.Template == "" {
		return fmt.Errorf("%w: no template: pass --template or set it in the config file", ErrConfig)
	}

	templateSrc, err := fsutil.ReadText(cfg.Template)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(colorEnabled(cmd))

	// The template is shared by every document; parse its placeholders once.
	placeholders, err := template.ParsePlaceholders(templateSrc)
	if err != nil {
		printParseError(styles, cfg.Template, templateSrc, err)
		return fmt.Errorf("%w: template %s", ErrBuildFailed, cfg.Template)
	}

	renderer := markdown.New(string(cfg.Flavor))
	engine := render.NewEngine(renderer.Render)

	var sanitizer *bluemonday.Policy
	if cfg.Sanitize {
		sanitizer = bluemonday.UGCPolicy()
	}

	logger.Debug("build starting",
		logging.FieldTemplate, cfg.Template,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldSanitize, cfg.Sanitize,
		logging.FieldPlaceholders, len(placeholders),
		logging.FieldFiles, len(args),
	)

	failed := 0
	for _, path := range args {
		if err := buildOne(engine, sanitizer, cfg, styles, path, templateSrc, placeholders); err != nil {
			failed++
			logger.Error("render failed", logging.FieldPath, path, logging.FieldError, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", ErrBuildFailed, failed, len(args))
	}
	return nil
}

func buildOne(engine *render.Engine, sanitizer *bluemonday.Policy, cfg *config.Config, styles *pretty.Styles, path, templateSrc string, placeholders []template.Placeholder) error {
	logger := logging.Default()

	src, err := fsutil.ReadText(path)
	if err != nil {
		return err
	}

	doc, err := document.Parse(src)
	if err != nil {
		printParseError(styles, path, src, err)
		return err
	}

	vars := render.Variables(doc)
	logger.Debug("parsed document",
		logging.FieldPath, path,
		logging.FieldTitle, doc.Title,
		logging.FieldVariables, len(vars),
		logging.FieldPlaceholders, len(placeholders),
	)

	html, err := engine.Substitute(templateSrc, placeholders, vars)
	if err != nil {
		// Substitution failures point into the template: an undefined
		// variable or a filter rejecting its input.
		printParseError(styles, cfg.Template, templateSrc, err)
		return err
	}

	if sanitizer != nil {
		html = sanitizer.Sanitize(html)
	}

	outPath := fsutil.OutputPath(cfg.OutDir, path)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := fsutil.WriteAtomic(outPath, []byte(html)); err != nil {
		return err
	}

	logger.Info("rendered", logging.FieldPath, path, logging.FieldOutput, outPath)
	return nil
}

// printParseError prints a styled diagnostic to stderr when err carries a
// source position.
func printParseError(styles *pretty.Styles, path, src string, err error) {
	var perr *scan.ParseError
	if errors.As(err, &perr) {
		fmt.Fprint(os.Stderr, styles.FormatParseError(path, src, perr))
	}
}

// loadConfig builds the effective config: file and environment via the
// loader, then explicit command-line flags on top.
func loadConfig(cmd *cobra.Command, flags *buildFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := result.Config

	if flags.template != "" {
		cfg.Template = flags.template
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = flags.outDir
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("sanitize") {
		cfg.Sanitize = flags.sanitize
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// colorEnabled resolves the persistent --color flag against stderr, where
// diagnostics are written.
func colorEnabled(cmd *cobra.Command) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.IsColorEnabled(mode, os.Stderr)
}
