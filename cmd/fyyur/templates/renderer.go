// Package templates holds the embedded HTML views and the echo renderer that
// executes them.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"slices"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed layouts partials pages forms errors
var files embed.FS

const layout = "layouts/main.html"

var funcs = template.FuncMap{
	"datetime": FormatDateTime,
	"selected": func(values []string, v any) bool {
		return slices.Contains(values, fmt.Sprint(v))
	},
}

// FormatDateTime renders show times the way the listing pages display them.
func FormatDateTime(t time.Time) string {
	return t.Format("Monday January 2, 2006 at 3:04PM")
}

// Renderer keeps one parsed set per view, each combined with the layout and
// the shared partials.
type Renderer struct {
	views map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{views: map[string]*template.Template{}}

	for _, dir := range []string{"pages", "forms", "errors"} {
		names, err := fs.Glob(files, dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			t, err := template.New(name).Funcs(funcs).ParseFS(files, layout, "partials/*.html", name)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			r.views[name] = t
		}
	}

	return r, nil
}

// Names lists the views the renderer knows about.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.views[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
