package skills

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.md.tmpl
var templatesFS embed.FS

var skillTemplates *template.Template

func init() {
	skillTemplates = template.Must(
		template.New("").ParseFS(templatesFS, "templates/*.md.tmpl"),
	)
}

// renderTemplate executes a named template with the given data and returns the result.
func renderTemplate(name string, data any) string {
	var buf bytes.Buffer
	if err := skillTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		// Templates are embedded and parsed at init, so this is a programming error.
		panic("skills: failed to render template " + name + ": " + err.Error())
	}
	return buf.String()
}

// Scaffold returns a starter SKILL.md manifest for a new skill.
func Scaffold(name, description string) string {
	return renderTemplate("skill.md.tmpl", struct {
		Name        string
		Description string
	}{name, description})
}
