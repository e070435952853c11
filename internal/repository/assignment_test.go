// internal/repository/assignment_test.go
package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pelycan/api/internal/domain"
	"github.com/pelycan/api/internal/model"
	"github.com/pelycan/api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func caseRow(id uuid.UUID, status model.CaseStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "status", "priority"}).
		AddRow(id.String(), "Demande de suivi", string(status), "medium")
}

func TestAssignmentTxCaseForUpdate(t *testing.T) {
	caseID := uuid.New()

	t.Run("locks the row", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "cases" WHERE id = .+ FOR UPDATE`).
			WithArgs(caseID.String(), 1).
			WillReturnRows(caseRow(caseID, model.CaseStatusNew))
		mock.ExpectRollback()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)
		defer tx.Rollback()

		c, err := tx.CaseForUpdate(context.Background(), caseID)
		assert.NoError(t, err)
		assert.Equal(t, model.CaseStatusNew, c.Status)
	})

	t.Run("maps a missing row to the case sentinel", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "cases"`).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)
		defer tx.Rollback()

		_, err = tx.CaseForUpdate(context.Background(), caseID)
		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})
}

func TestAssignmentTxCreateCaseAssignment(t *testing.T) {
	caseID := uuid.New()
	proID := uuid.New()

	t.Run("maps the unique index violation to the conflict sentinel", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "case_assignments"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_case_assignments_active"})
		mock.ExpectRollback()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)
		defer tx.Rollback()

		err = tx.CreateCaseAssignment(context.Background(), &model.CaseAssignment{
			CaseID:         caseID,
			ProfessionalID: proID,
			Status:         model.AssignmentAssigned,
		})
		assert.ErrorIs(t, err, domain.ErrCaseAlreadyAssigned)
	})

	t.Run("wraps other database errors", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "case_assignments"`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)
		defer tx.Rollback()

		err = tx.CreateCaseAssignment(context.Background(), &model.CaseAssignment{
			CaseID:         caseID,
			ProfessionalID: proID,
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCaseAlreadyAssigned)
	})
}

func TestAssignmentTxProfessional(t *testing.T) {
	proID := uuid.New()

	t.Run("only matches the professional role", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = .+ AND role = .+`).
			WithArgs(proID.String(), "pro", 1).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)
		defer tx.Rollback()

		_, err = tx.Professional(context.Background(), proID)
		assert.ErrorIs(t, err, domain.ErrProfessionalNotFound)
	})
}

func TestAssignmentTxCommitSequence(t *testing.T) {
	emergencyID := uuid.New()
	proID := uuid.New()

	t.Run("emergency assignment updates then commits", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "emergency_requests" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := repository.NewAssignmentRepository(gdb)
		tx, err := repo.Begin(context.Background())
		require.NoError(t, err)

		err = tx.AssignEmergency(context.Background(), emergencyID, proID, "note", time.Now())
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
