package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Markdown writes doc as a Markdown document.
func Markdown(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\n", doc.Title)
	if doc.CreatedAt != "" {
		fmt.Fprintf(bw, "_%s %s_\n\n", CreatedAtLabel, doc.CreatedAt)
	}

	writeMarkdownFields(bw, doc.Header)
	writeMarkdownFields(bw, doc.Info)

	for _, s := range doc.Sections {
		fmt.Fprintf(bw, "## %s\n\n", s.Title)
		if s.Body != "" {
			fmt.Fprintf(bw, "%s\n\n", s.Body)
		}
	}

	bw.WriteString("---\n\n")
	for _, sig := range doc.Signatures {
		fmt.Fprintf(bw, "%s\n\n%s\n\n", strings.Repeat("_", 40), sig)
	}

	return bw.Flush()
}

func writeMarkdownFields(w *bufio.Writer, fields []Field) {
	for _, f := range fields {
		fmt.Fprintf(w, "- **%s:** %s\n", f.Label, f.Value)
	}
	w.WriteString("\n")
}
