package preview

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Controls are the interactive links shown under the on-screen preview.
// The printable document is rendered without them.
type Controls struct {
	PrintURL string
	BackURL  string
}

type pageData struct {
	View     View
	Labels   map[string]string
	Controls *Controls
}

// Renderer turns a record into preview HTML.
type Renderer struct {
	tpl    *template.Template
	labels map[string]string
}

// NewRenderer parses the embedded preview template. Label overrides replace
// the matching DefaultLabels entries.
func NewRenderer(labels map[string]string) (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/preview.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl, labels: mergeLabels(labels)}, nil
}

// View builds the filtered view for rec with this renderer's labels.
func (r *Renderer) View(rec model.Resume) View {
	return BuildView(rec, r.labels)
}

// Render writes the full preview document. Pass nil controls for the
// printable version.
func (r *Renderer) Render(w io.Writer, rec model.Resume, controls *Controls) error {
	return r.tpl.ExecuteTemplate(w, "preview", pageData{
		View:     r.View(rec),
		Labels:   r.labels,
		Controls: controls,
	})
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(rec model.Resume, controls *Controls) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rec, controls); err != nil {
		return "", err
	}
	return buf.String(), nil
}
