package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const plansTable = "plans"

// planColumns is the column order shared by every SELECT and INSERT.
var planColumns = []string{
	"id",
	"student_name",
	"class_name",
	"subject",
	"period",
	"frequency",
	"teacher_regent",
	"collaboration_team",
	"execution_period",
	"content",
	"created_at",
}

const searchCondition = `(LOWER(student_name) LIKE ? ESCAPE '\' OR LOWER(class_name) LIKE ? ESCAPE '\')`

func buildListPlansQuery(b sq.StatementBuilderType, search string) (string, []any, error) {
	query := b.Select(planColumns...).
		From(plansTable).
		OrderBy("created_at DESC", "id DESC")

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(sq.Expr(searchCondition, pattern, pattern))
	}

	return query.ToSql()
}

func buildGetPlanQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(planColumns...).
		From(plansTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertPlanQuery(b sq.StatementBuilderType, values []any) (string, []any, error) {
	return b.Insert(plansTable).
		Columns(planColumns...).
		Values(values...).
		ToSql()
}

func buildDeletePlanQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(plansTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
