package models

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledMetadata() PlanMetadata {
	return PlanMetadata{
		StudentName:       "João Silva",
		ClassName:         "5º Ano A",
		Subject:           "Matemática",
		Period:            "1º Bimestre",
		Frequency:         "Semanal",
		TeacherRegent:     "Maria",
		CollaborationTeam: "AEE",
		ExecutionPeriod:   "Fevereiro a Abril",
	}
}

func TestPlanMetadata_MissingFields(t *testing.T) {
	m := filledMetadata()
	assert.Empty(t, m.MissingFields())

	m.Subject = "   "
	m.ExecutionPeriod = ""
	assert.Equal(t, []string{"subject", "execution_period"}, m.MissingFields())

	assert.Len(t, PlanMetadata{}.MissingFields(), 8)
}

func TestDraftInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		draft      DraftInput
		wantFields []string
	}{
		{
			name:  "complete without attachment",
			draft: DraftInput{PlanMetadata: filledMetadata()},
		},
		{
			name: "complete with pdf",
			draft: DraftInput{PlanMetadata: filledMetadata(), Attachment: &Attachment{
				MimeType: MimeTypePDF, Data: "JVBERi0=",
			}},
		},
		{
			name:       "empty metadata",
			draft:      DraftInput{ExtraContext: "contexto"},
			wantFields: PlanMetadata{}.MissingFields(),
		},
		{
			name: "non-pdf attachment",
			draft: DraftInput{PlanMetadata: filledMetadata(), Attachment: &Attachment{
				MimeType: "image/png", Data: "aGVsbG8=",
			}},
			wantFields: []string{"attachment.mime_type"},
		},
		{
			name: "empty attachment data",
			draft: DraftInput{PlanMetadata: filledMetadata(), Attachment: &Attachment{
				MimeType: MimeTypePDF,
			}},
			wantFields: []string{"attachment.data"},
		},
		{
			name: "attachment data is not base64",
			draft: DraftInput{PlanMetadata: filledMetadata(), Attachment: &Attachment{
				MimeType: MimeTypePDF, Data: "not base64!",
			}},
			wantFields: []string{"attachment.data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantFields, vErr.Fields)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDraftInput_NewRecord(t *testing.T) {
	draft := DraftInput{PlanMetadata: filledMetadata(), ExtraContext: "extra"}
	content := ContentFields{Objectives: "objetivos"}

	record := draft.NewRecord(content)

	assert.False(t, record.IsSaved())
	assert.Nil(t, record.CreatedAt)
	assert.Equal(t, draft.PlanMetadata, record.PlanMetadata)
	assert.Equal(t, content, record.Content)
}

// ── attachments ──

func TestAttachment_Bytes(t *testing.T) {
	raw, err := (&Attachment{Data: "JVBERi0="}).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), raw)

	_, err = (&Attachment{}).Bytes()
	assert.ErrorIs(t, err, ErrEmptyAttachment)

	_, err = (&Attachment{Data: "not base64!"}).Bytes()
	assert.Error(t, err)
}

func TestNewPDFAttachment(t *testing.T) {
	raw := []byte("%PDF-1.7\nbody")

	att, err := NewPDFAttachment("laudo.pdf", raw)

	require.NoError(t, err)
	assert.Equal(t, "laudo.pdf", att.Name)
	assert.Equal(t, MimeTypePDF, att.MimeType)
	decoded, err := base64.StdEncoding.DecodeString(att.Data)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestNewPDFAttachment_RejectsNonPDF(t *testing.T) {
	att, err := NewPDFAttachment("foto.png", []byte("\x89PNG"))

	assert.Nil(t, att)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"attachment"}, vErr.Fields)
}

func TestLoadPDFAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relatorio.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	att, err := LoadPDFAttachment(path)
	require.NoError(t, err)
	assert.Equal(t, "relatorio.pdf", att.Name)

	_, err = LoadPDFAttachment(filepath.Join(dir, "missing.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
