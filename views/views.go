// Package views embeds the HTML templates rendered by the controllers.
package views

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

// Templates parses every page; each is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// MustTemplates panics when a template does not parse.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
