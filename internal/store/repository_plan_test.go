package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("plan-%03d", s.n)
}

func testContent() models.ContentFields {
	return models.ContentFields{
		ClinicalHistory:        "histórico",
		SpecificCondition:      "condição",
		SkillsAffinities:       "habilidades",
		Barriers:               "barreiras",
		ClassSkills:            "EF05MA01",
		AdaptedSkills:          "adaptadas",
		KnowledgeObject:        "frações",
		AdaptedKnowledgeObject: "frações com material concreto",
		Objectives:             "objetivos",
		Methodologies:          "metodologias",
		Evaluation:             "avaliação",
	}
}

func testPlan(student, class string) models.PlanRecord {
	return models.PlanRecord{
		PlanMetadata: models.PlanMetadata{
			StudentName:       student,
			ClassName:         class,
			Subject:           "Matemática",
			Period:            "1º Bimestre",
			Frequency:         "Semanal",
			TeacherRegent:     "Ana",
			CollaborationTeam: "AEE",
			ExecutionPeriod:   "Fev a Abr",
		},
		Content: testContent(),
	}
}

func newMockPlanRepo(t *testing.T) (*planRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newPostgresDB(conn, logger.Nop())
	repo := &planRepository{
		DB:  db,
		ids: &sequenceIDs{},
		now: func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	return repo, mock
}

func newSQLitePlanRepo(t *testing.T) *planRepository {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	return &planRepository{
		DB:  db,
		ids: &sequenceIDs{},
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Minute)
		},
	}
}

func planRow(id string, createdAt time.Time) []driver.Value {
	p := testPlan("João", "5A")
	return []driver.Value{
		id, p.StudentName, p.ClassName, p.Subject, p.Period, p.Frequency,
		p.TeacherRegent, p.CollaborationTeam, p.ExecutionPeriod,
		mustContentJSON(p.Content), createdAt,
	}
}

func mustContentJSON(c models.ContentFields) string {
	raw, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestPlanRepository_List_Success(t *testing.T) {
	// Arrange
	repo, mock := newMockPlanRepo(t)
	query, _, err := buildListPlansQuery(repo.builder, "")
	require.NoError(t, err)

	newer := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(planColumns).
		AddRow(planRow("b", newer)...).
		AddRow(planRow("a", older)...)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	// Act
	plans, err := repo.List(context.Background(), "")

	// Assert
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "b", plans[0].ID)
	assert.Equal(t, newer, *plans[0].CreatedAt)
	assert.Equal(t, testContent(), plans[0].Content)
	assert.Equal(t, "João", plans[1].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_List_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	query, _, _ := buildListPlansQuery(repo.builder, "")
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows(planColumns))

	plans, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

func TestPlanRepository_List_QueryError(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	query, _, _ := buildListPlansQuery(repo.builder, "")
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	var storeErr *models.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, opList, storeErr.Op)
}

func TestPlanRepository_List_CorruptContent(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	query, _, _ := buildListPlansQuery(repo.builder, "")

	row := planRow("a", time.Now())
	row[9] = "{not json"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows(planColumns).AddRow(row...))

	_, err := repo.List(context.Background(), "")

	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorIs(t, err, ErrEncodingContent)
}

func TestPlanRepository_List_RowsError(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	query, _, _ := buildListPlansQuery(repo.builder, "")
	rows := sqlmock.NewRows(planColumns).
		AddRow(planRow("a", time.Now())...).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	_, err := repo.List(context.Background(), "")

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestPlanRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	query, _, _ := buildGetPlanQuery(repo.builder, "missing")
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(planColumns))

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorIs(t, err, models.ErrPlanNotFound)
}

// ── Insert ───────────────────────────────────────────────────────────────────

func TestPlanRepository_Insert_AssignsIDAndCreatedAt(t *testing.T) {
	// Arrange
	repo, mock := newMockPlanRepo(t)
	plan := testPlan("João", "5A")
	plan.ID = "ignored"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plans")).
		WithArgs("plan-001", "João", "5A", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	saved, err := repo.Insert(context.Background(), plan)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "plan-001", saved.ID)
	require.NotNil(t, saved.CreatedAt)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), *saved.CreatedAt)
	assert.Equal(t, plan.Content, saved.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_Insert_UniqueViolation(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plans")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Insert(context.Background(), testPlan("João", "5A"))

	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorIs(t, err, ErrPlanAlreadyExists)
}

func TestPlanRepository_Insert_NoRowsAffected(t *testing.T) {
	repo, mock := newMockPlanRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plans")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Insert(context.Background(), testPlan("João", "5A"))

	assert.ErrorIs(t, err, ErrPlanNotSaved)
}

// ── DeleteByID ───────────────────────────────────────────────────────────────

func TestPlanRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name      string
		result    sql.Result
		execErr   error
		wantErr   bool
		wantIsErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing id", result: sqlmock.NewResult(0, 0), wantErr: true, wantIsErr: models.ErrPlanNotFound},
		{name: "exec failure", execErr: errors.New("boom"), wantErr: true, wantIsErr: ErrExecutingStatement},
		{name: "rows affected failure", result: sqlmock.NewErrorResult(errors.New("unsupported")), wantErr: true, wantIsErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockPlanRepo(t)
			query, _, _ := buildDeletePlanQuery(repo.builder, "id-1")
			exp := mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("id-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteByID(context.Background(), "id-1")

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrStore)
			assert.ErrorIs(t, err, tt.wantIsErr)
		})
	}
}

// ── SQLite round trip ────────────────────────────────────────────────────────

func TestPlanRepository_SQLite_RoundTrip(t *testing.T) {
	repo := newSQLitePlanRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, testPlan("João Silva", "5A"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, testPlan("Maria Souza", "6B"))
	require.NoError(t, err)

	plans, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, second.ID, plans[0].ID, "newest plan comes first")
	assert.Equal(t, first.ID, plans[1].ID)
	assert.Equal(t, testContent(), plans[1].Content)
	assert.True(t, plans[0].CreatedAt.After(*plans[1].CreatedAt))

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.PlanMetadata, got.PlanMetadata)
	assert.True(t, first.CreatedAt.Equal(*got.CreatedAt))

	require.NoError(t, repo.DeleteByID(ctx, first.ID))

	plans, err = repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, second.ID, plans[0].ID)

	err = repo.DeleteByID(ctx, first.ID)
	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorIs(t, err, models.ErrPlanNotFound)
}

func TestPlanRepository_SQLite_Search(t *testing.T) {
	repo := newSQLitePlanRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, testPlan("João Silva", "5A"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, testPlan("Maria Souza", "6B"))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, testPlan("Pedro 100%", "5C"))
	require.NoError(t, err)

	tests := []struct {
		search string
		want   []string
	}{
		{search: "", want: []string{"Pedro 100%", "Maria Souza", "João Silva"}},
		{search: "maria", want: []string{"Maria Souza"}},
		{search: "5", want: []string{"Pedro 100%", "João Silva"}},
		{search: "  6b ", want: []string{"Maria Souza"}},
		{search: "100%", want: []string{"Pedro 100%"}},
		{search: "%", want: []string{"Pedro 100%"}},
		{search: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			plans, err := repo.List(ctx, tt.search)
			require.NoError(t, err)

			names := make([]string, 0, len(plans))
			for _, p := range plans {
				names = append(names, p.StudentName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
