// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPlansQuery(t *testing.T) {
	t.Run("without search", func(t *testing.T) {
		query, args, err := buildListPlansQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "")
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, student_name, class_name, subject, period, frequency, teacher_regent, collaboration_team, execution_period, content, created_at FROM plans ORDER BY created_at DESC, id DESC",
			query)
		assert.Empty(t, args)
	})

	t.Run("with search uses dollar placeholders", func(t *testing.T) {
		query, args, err := buildListPlansQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), " Ana ")
		require.NoError(t, err)

		assert.Contains(t, query, "LOWER(student_name) LIKE $1")
		assert.Contains(t, query, "LOWER(class_name) LIKE $2")
		assert.Equal(t, []any{"%ana%", "%ana%"}, args)
	})

	t.Run("with search uses question placeholders", func(t *testing.T) {
		query, args, err := buildListPlansQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "5a")
		require.NoError(t, err)

		assert.Contains(t, query, "LOWER(student_name) LIKE ?")
		assert.Len(t, args, 2)
	})
}

func TestBuildDeletePlanQuery(t *testing.T) {
	query, args, err := buildDeletePlanQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "abc")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM plans WHERE id = $1", query)
	assert.Equal(t, []any{"abc"}, args)
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":   "plain",
		"100%":    `100\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), in)
	}
}
