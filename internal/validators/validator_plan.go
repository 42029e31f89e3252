package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

const (
	FieldID         = "id"
	FieldMetadata   = "metadata"
	FieldContent    = "content"
	FieldAttachment = "attachment"
)

// PlanID marks a string as a plan identifier for [PlanValidator].
type PlanID string

// PlanValidator validates [models.PlanRecord], [models.DraftInput] and
// [PlanID] values.
//
// Without field names a plan record is checked for metadata and content and
// a draft for metadata and attachment.
type PlanValidator struct {
}

func NewPlanValidator() Validator {
	return &PlanValidator{}
}

func (v *PlanValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case PlanID:
		return v.validateID(value)

	case models.PlanRecord:
		return v.validatePlan(ctx, value, fields...)
	case *models.PlanRecord:
		return v.validatePlan(ctx, *value, fields...)

	case models.DraftInput:
		return v.validateDraft(ctx, value, fields...)
	case *models.DraftInput:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PlanValidator) validateID(id PlanID) error {
	if strings.TrimSpace(string(id)) == "" {
		return &models.ValidationError{Fields: []string{FieldID}, Reason: ErrEmptyPlanID.Error()}
	}
	return nil
}

func (v *PlanValidator) validatePlan(_ context.Context, plan models.PlanRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMetadata, FieldContent}
	}
	if err := checkFields(fields, FieldMetadata, FieldContent); err != nil {
		return err
	}

	var missing []string
	if slices.Contains(fields, FieldMetadata) {
		missing = append(missing, plan.MissingFields()...)
	}
	if slices.Contains(fields, FieldContent) && contentIsBlank(plan.Content) {
		missing = append(missing, FieldContent)
	}
	if len(missing) > 0 {
		return &models.ValidationError{Fields: missing}
	}
	return nil
}

func (v *PlanValidator) validateDraft(_ context.Context, draft models.DraftInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMetadata, FieldAttachment}
	}
	if err := checkFields(fields, FieldMetadata, FieldAttachment); err != nil {
		return err
	}

	if slices.Contains(fields, FieldMetadata) {
		if missing := draft.MissingFields(); len(missing) > 0 {
			return &models.ValidationError{Fields: missing}
		}
	}
	if slices.Contains(fields, FieldAttachment) && draft.Attachment != nil {
		if draft.Attachment.MimeType != models.MimeTypePDF || draft.Attachment.Data == "" {
			return &models.ValidationError{Fields: []string{FieldAttachment}, Reason: ErrInvalidAttachment.Error()}
		}
		if _, err := draft.Attachment.Bytes(); err != nil {
			return &models.ValidationError{Fields: []string{FieldAttachment}, Reason: ErrAttachmentData.Error()}
		}
	}
	return nil
}

func checkFields(fields []string, allowed ...string) error {
	for _, f := range fields {
		if !slices.Contains(allowed, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func contentIsBlank(c models.ContentFields) bool {
	for _, f := range c.Fields() {
		if strings.TrimSpace(f.Value) != "" {
			return false
		}
	}
	return true
}
