package models

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MimeTypePDF is the only attachment media type accepted for generation.
const MimeTypePDF = "application/pdf"

var pdfMagic = []byte("%PDF-")

// PlanMetadata identifies the student and the teaching context of a plan.
// All fields are required.
type PlanMetadata struct {
	StudentName       string `json:"student_name"`
	ClassName         string `json:"class_name"`
	Subject           string `json:"subject"`
	Period            string `json:"period"`
	Frequency         string `json:"frequency"`
	TeacherRegent     string `json:"teacher_regent"`
	CollaborationTeam string `json:"collaboration_team"`
	ExecutionPeriod   string `json:"execution_period"`
}

// MissingFields returns the JSON names of the empty (or blank) metadata fields.
func (m PlanMetadata) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("student_name", m.StudentName)
	check("class_name", m.ClassName)
	check("subject", m.Subject)
	check("period", m.Period)
	check("frequency", m.Frequency)
	check("teacher_regent", m.TeacherRegent)
	check("collaboration_team", m.CollaborationTeam)
	check("execution_period", m.ExecutionPeriod)
	return missing
}

// PlanRecord is a persisted individualized education plan (PEI).
//
// ID and CreatedAt are assigned by the store on insert and are empty for
// records that only exist in memory. A saved record is never updated, only deleted.
type PlanRecord struct {
	// ID is the opaque identifier assigned on insert.
	ID string `json:"id,omitempty"`

	// CreatedAt is the insert timestamp.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	PlanMetadata

	// Content is the generated plan body.
	Content ContentFields `json:"content"`
}

// IsSaved reports whether the record has been persisted.
func (p PlanRecord) IsSaved() bool {
	return p.ID != ""
}

// TableName returns the name of the database table that stores plans.
func (p PlanRecord) TableName() string {
	return "plans"
}

// Attachment is a binary document sent along with a generation request.
type Attachment struct {
	// Name is the original file name, informational only.
	Name string `json:"name,omitempty"`

	// MimeType is the media type of Data. Only [MimeTypePDF] is accepted.
	MimeType string `json:"mime_type"`

	// Data is the base64 (standard encoding) file content.
	Data string `json:"data"`
}

// Bytes decodes Data. Empty data is an error.
func (a *Attachment) Bytes() ([]byte, error) {
	if a.Data == "" {
		return nil, ErrEmptyAttachment
	}
	raw, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return raw, nil
}

// DraftInput is the unsaved form input of a single generation attempt.
type DraftInput struct {
	PlanMetadata

	// ExtraContext is optional free text passed to the generator.
	ExtraContext string `json:"extra_context,omitempty"`

	// Attachment is an optional medical or pedagogical report.
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Validate checks that every metadata field is filled and that the attachment,
// if any, is a PDF with valid base64 data. It returns a *[ValidationError] otherwise.
func (d DraftInput) Validate() error {
	missing := d.MissingFields()
	if d.Attachment != nil {
		if d.Attachment.MimeType != MimeTypePDF {
			missing = append(missing, "attachment.mime_type")
		}
		if _, err := d.Attachment.Bytes(); err != nil {
			missing = append(missing, "attachment.data")
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// NewRecord wraps generated content into an unsaved [PlanRecord].
func (d DraftInput) NewRecord(content ContentFields) PlanRecord {
	return PlanRecord{PlanMetadata: d.PlanMetadata, Content: content}
}

// NewPDFAttachment encodes raw PDF bytes as an [Attachment].
// Content without the PDF magic header is rejected with a *[ValidationError].
func NewPDFAttachment(name string, raw []byte) (*Attachment, error) {
	if !bytes.HasPrefix(raw, pdfMagic) {
		return nil, &ValidationError{Fields: []string{"attachment"}, Reason: "only PDF files are accepted"}
	}
	return &Attachment{
		Name:     name,
		MimeType: MimeTypePDF,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// LoadPDFAttachment reads a PDF file from disk into an [Attachment].
func LoadPDFAttachment(path string) (*Attachment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	return NewPDFAttachment(filepath.Base(path), raw)
}
