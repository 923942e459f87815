// Package web holds the browser form served at the site root.
package web

import (
	"embed"
	"html/template"
)

// IndexTemplate is the name the form is registered under.
const IndexTemplate = "index.html"

//go:embed templates
var templates embed.FS

// PageData is rendered into the form.
type PageData struct {
	Title         string
	VideoInfoPath string
	DownloadPath  string
}

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
