// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package store

import "errors"

// Domain-level failures wrapped into *models.StoreError by the repository.
var (
	// ErrPlanAlreadyExists is returned when an insert collides with an
	// existing primary key.
	ErrPlanAlreadyExists = errors.New("plan already exists")

	// ErrPlanNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrPlanNotSaved = errors.New("plan was not saved")

	// ErrUnknownDriver is returned by [NewStorages] for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan plan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan plan rows")

	// ErrEncodingContent is returned when plan content cannot be
	// marshalled to or unmarshalled from its JSON column.
	ErrEncodingContent = errors.New("failed to encode plan content")
)
