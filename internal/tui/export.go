package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/divinoviana/planoespecialindividualizado/internal/render"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// exportFormats are written by the view screen export key.
var exportFormats = []render.Format{render.FormatMarkdown, render.FormatHTML, render.FormatXLSX}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// exportPlan writes plan to dir in every export format and returns the
// written paths.
func exportPlan(dir string, plan models.PlanRecord) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	doc := render.NewDocument(plan)
	paths := make([]string, 0, len(exportFormats))
	for _, f := range exportFormats {
		path := filepath.Join(dir, render.FileName(plan.StudentName, f))
		if err := writeDocumentFile(path, doc, f); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeDocumentFile(path string, doc render.Document, f render.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err = render.Write(file, doc, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func cmdExport(dir string, plan models.PlanRecord) tea.Cmd {
	return func() tea.Msg {
		paths, err := exportPlan(dir, plan)
		return exportDoneMsg{paths: paths, err: err}
	}
}

// planText renders plan as plain text for the document screens and the
// clipboard.
func planText(plan models.PlanRecord) string {
	var buf bytes.Buffer
	if err := render.Text(&buf, render.NewDocument(plan)); err != nil {
		return err.Error()
	}
	return buf.String()
}

func copyPlan(plan models.PlanRecord) error {
	return clipboardWrite(planText(plan))
}
