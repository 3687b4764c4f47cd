// Package web holds the server-rendered views.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"price": func(p float64) string {
		return fmt.Sprintf("%.2f", p)
	},
}

// Templates parses every view. Each page is addressed by its file name,
// e.g. "videojuego_form.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
