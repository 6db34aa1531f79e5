// Package render ties the engine together: it resolves variables from a
// parsed document and substitutes every template placeholder.
package render

import (
	"errors"

	"github.com/yaklabco/mdforge/pkg/document"
	"github.com/yaklabco/mdforge/pkg/filter"
	"github.com/yaklabco/mdforge/pkg/scan"
	"github.com/yaklabco/mdforge/pkg/template"
)

// ErrUndefinedVariable indicates a placeholder referencing a name absent
// from the resolved variable table.
var ErrUndefinedVariable = errors.New("undefined variable")

// Engine renders Markdown documents against an HTML template.
type Engine struct {
	eval *filter.Evaluator
}

// NewEngine creates an engine whose markdown filter delegates to render.
func NewEngine(render filter.MarkdownFunc) *Engine {
	return &Engine{eval: filter.NewEvaluator(render)}
}

// Variables builds the read-only variable table for one render: the
// derived `title` and `content` entries, then every metadata entry.
//
// The stored `content` value is the raw extracted body; rendering to HTML
// happens only when a placeholder applies the markdown filter. Metadata
// entries are applied last so an explicitly authored key wins over a
// derived one, and duplicate metadata keys resolve last-seen-wins.
func Variables(doc *document.Document) map[string]string {
	vars := make(map[string]string, len(doc.Meta)+2)
	vars["title"] = doc.Title
	vars["content"] = doc.Body
	for _, entry := range doc.Meta {
		vars[entry.Key] = entry.Value
	}
	return vars
}

// Render produces the final HTML document for one Markdown source and one
// template. A failed parse or substitution yields no document, never a
// partially substituted one.
func (e *Engine) Render(markdownSrc, templateSrc string) (string, error) {
	doc, err := document.Parse(markdownSrc)
	if err != nil {
		return "", err
	}

	placeholders, err := template.ParsePlaceholders(templateSrc)
	if err != nil {
		return "", err
	}

	return e.Substitute(templateSrc, placeholders, Variables(doc))
}

// Substitute rewrites the template over a working copy. The placeholder
// list must arrive as template.ParsePlaceholders returns it, ordered
// highest start offset first; splicing in that order leaves every pending
// placeholder's original offsets valid, so no offset bookkeeping is
// needed. Callers rendering many documents against one template parse the
// placeholders once and call Substitute per document.
func (e *Engine) Substitute(templateSrc string, placeholders []template.Placeholder, vars map[string]string) (string, error) {
	out := templateSrc
	for _, ph := range placeholders {
		value, ok := vars[ph.Name]
		if !ok {
			return "", scan.Errorf(ph.Selection.Start, ErrUndefinedVariable,
				"undefined variable %q", ph.Name)
		}

		value, err := e.eval.ApplyAll(value, ph.Filters)
		if err != nil {
			return "", scan.Errorf(ph.Selection.Start, err,
				"placeholder %q: %v", ph.Name, err)
		}

		out = out[:ph.Selection.Start.Offset] + value + out[ph.Selection.End.Offset:]
	}
	return out, nil
}
