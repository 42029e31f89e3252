package render

import (
	_ "embed"
	"html/template"
	"io"
)

//go:embed templates/plan.html.tmpl
var planHTML string

var htmlTemplate = template.Must(template.New("plan").Parse(planHTML))

// HTML writes doc as a standalone page styled for printing on A4 paper.
// Every value is escaped; section bodies keep their line breaks.
func HTML(w io.Writer, doc Document) error {
	return htmlTemplate.Execute(w, doc)
}
