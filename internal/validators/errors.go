// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPlanID       = errors.New("plan id is empty")
	ErrEmptyPlanContent  = errors.New("plan content is empty")
	ErrInvalidAttachment = errors.New("attachment must be a PDF")
	ErrAttachmentData    = errors.New("attachment data is not valid base64")
)
