// Package web holds the embedded HTML templates for the school and
// inventory apps.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/school/*.tmpl templates/inventory/*.tmpl
var templatesFS embed.FS

// SchoolTemplates parses the school page templates.
func SchoolTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/school/*.tmpl"))
}

// InventoryTemplates parses the inventory page templates.
func InventoryTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/inventory/*.tmpl"))
}
