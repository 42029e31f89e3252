package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const textWidth = 72

// Text writes doc as plain text, suitable for the clipboard.
func Text(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("=", textWidth)

	fmt.Fprintf(bw, "%s\n%s\n%s\n", rule, centered(strings.ToUpper(doc.Title)), rule)
	if doc.CreatedAt != "" {
		fmt.Fprintf(bw, "%s %s\n", CreatedAtLabel, doc.CreatedAt)
	}
	bw.WriteString("\n")

	for _, f := range append(append([]Field(nil), doc.Header...), doc.Info...) {
		fmt.Fprintf(bw, "%s: %s\n", f.Label, f.Value)
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(bw, "\n%s\n%s\n", strings.ToUpper(s.Title), strings.Repeat("-", utf8.RuneCountInString(s.Title)))
		if s.Body != "" {
			fmt.Fprintf(bw, "%s\n", s.Body)
		}
	}

	bw.WriteString("\n")
	for _, sig := range doc.Signatures {
		fmt.Fprintf(bw, "\n%s\n%s\n", strings.Repeat("_", 40), sig)
	}

	return bw.Flush()
}

func centered(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= textWidth {
		return s
	}
	return strings.Repeat(" ", (textWidth-n)/2) + s
}
