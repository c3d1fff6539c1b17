package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var templatesFS embed.FS

// Parse loads every embedded page template.
func Parse() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
