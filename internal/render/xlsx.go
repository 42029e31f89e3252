package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "PEI"

// XLSX writes doc as a single-sheet workbook: title, metadata rows, then one
// row per section with the title in column A and the body in column B.
func XLSX(w io.Writer, doc Document) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("label style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("body style: %w", err)
	}

	sw := sheetWriter{f: f}
	sw.row(titleStyle, bodyStyle, doc.Title, "")
	if doc.CreatedAt != "" {
		sw.row(labelStyle, bodyStyle, CreatedAtLabel, doc.CreatedAt)
	}
	sw.skip()
	for _, field := range append(append([]Field(nil), doc.Header...), doc.Info...) {
		sw.row(labelStyle, bodyStyle, field.Label, field.Value)
	}
	sw.skip()
	for _, s := range doc.Sections {
		sw.row(labelStyle, bodyStyle, s.Title, s.Body)
	}
	if sw.err != nil {
		return sw.err
	}

	if err = f.SetColWidth(sheetName, "A", "A", 45); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err = f.SetColWidth(sheetName, "B", "B", 100); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// sheetWriter appends two-column rows and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	n   int
	err error
}

func (s *sheetWriter) skip() {
	s.n++
}

func (s *sheetWriter) row(labelStyle, valueStyle int, label, value string) {
	if s.err != nil {
		return
	}
	s.n++

	a, _ := excelize.CoordinatesToCellName(1, s.n)
	b, _ := excelize.CoordinatesToCellName(2, s.n)

	steps := []func() error{
		func() error { return s.f.SetCellValue(sheetName, a, label) },
		func() error { return s.f.SetCellValue(sheetName, b, value) },
		func() error { return s.f.SetCellStyle(sheetName, a, a, labelStyle) },
		func() error { return s.f.SetCellStyle(sheetName, b, b, valueStyle) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			s.err = fmt.Errorf("row %d: %w", s.n, err)
			return
		}
	}
}
