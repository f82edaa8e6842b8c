package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/wadjakorntonsri/ito/pkg/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"aliasPath": aliasPath,
}

// aliasPath is the request path that resolves alias. Escaping every byte
// keeps a literal "%41" in an alias from being decoded by the browser.
func aliasPath(alias string) string {
	return "/" + url.PathEscape(alias)
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("root.html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

type rootPage struct {
	Links []domain.Link
}

// Render produces the link list page. Nothing is written on failure.
func (r *Renderer) Render(links []domain.Link) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "root.html", rootPage{Links: links}); err != nil {
		return nil, fmt.Errorf("render root page: %w", err)
	}
	return buf.Bytes(), nil
}
