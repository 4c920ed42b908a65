// Package view renders the storefront pages. Templates and static assets are
// embedded in the binary so the server has no runtime file dependencies and
// can be started from any working directory.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded storefront assets, rooted so that
// style.css sits at the top level.
func StaticFS() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}

// Renderer implements echo.Renderer on top of html/template.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
