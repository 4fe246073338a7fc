package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/ehr/recordview/internal/domain/record"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page wraps a view model for the page layout. View is one of "card",
// "summary" or "timeline".
type Page struct {
	Title string
	View  string
	Data  interface{}
}

// Renderer renders view models to HTML. It satisfies echo.Renderer.
type Renderer struct {
	tmpl *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("recordview").Funcs(template.FuncMap{
		"iconRef": func(name string) record.Icon { return record.Icon{Name: name} },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse view templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template. The echo context is unused.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// RenderPage writes a full HTML document around one view model.
func (r *Renderer) RenderPage(w io.Writer, title string, v interface{}) error {
	name, err := viewName(v)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "page", Page{Title: title, View: name, Data: v})
}

// RenderFragment writes a view model without the page layout.
func (r *Renderer) RenderFragment(w io.Writer, v interface{}) error {
	name, err := viewName(v)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, name, v)
}

func viewName(v interface{}) (string, error) {
	switch v.(type) {
	case *Card:
		return "card", nil
	case *Summary:
		return "summary", nil
	case *Timeline:
		return "timeline", nil
	}
	return "", fmt.Errorf("no template for %T", v)
}
