package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
)

// DefaultMathJaxURL typesets the equation strings in rendered documents.
const DefaultMathJaxURL = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"

//go:embed templates/design.html
var templateFS embed.FS

var designTemplate = template.Must(
	template.New("design.html").
		Funcs(template.FuncMap{"fmtValue": formatValue}).
		ParseFS(templateFS, "templates/design.html"),
)

// Render writes the document as HTML.
func Render(w io.Writer, doc Document) error {
	if doc.MathJaxURL == "" {
		doc.MathJaxURL = DefaultMathJaxURL
	}
	if err := designTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// RenderFile renders the document to a file, creating or truncating it.
func RenderFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := Render(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
