// Package web holds the server-rendered pages of the quiz frontend.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page and partial. Question markup comes from the
// backend and is trusted, so it is passed through the "trusted" helper.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"trusted": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(templateFS, "templates/*.html")
}
