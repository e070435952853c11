// internal/repository/repository.go
package repository

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pelycan/api/internal/domain"
	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres unique constraint
// failure, which the active-assignment partial index raises when two
// transactions race on the same case.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// notFoundOr maps gorm's record-not-found to the given domain error and
// leaves everything else untouched.
func notFoundOr(err error, sentinel *domain.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
