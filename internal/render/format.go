package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is an output encoding of a [Document].
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatXLSX     Format = "xlsx"
)

// ParseFormat accepts "html", "md" (or "markdown"), "txt" (or "text") and
// "xlsx". An empty string selects HTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType is the media type of the encoded document.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/html; charset=utf-8"
	}
}

// Write encodes doc to w in format f.
func Write(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatHTML:
		return HTML(w, doc)
	case FormatMarkdown:
		return Markdown(w, doc)
	case FormatText:
		return Text(w, doc)
	case FormatXLSX:
		return XLSX(w, doc)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// FileName suggests a file name for a plan of student, e.g. "pei-joao-silva.md".
func FileName(student string, f Format) string {
	slug := slugify(student)
	if slug == "" {
		return "pei." + string(f)
	}
	return "pei-" + slug + "." + string(f)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func slugify(s string) string {
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
