// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package service

import "errors"

var (
	ErrUnexpectedAdapter = errors.New("unexpected server response")
)
