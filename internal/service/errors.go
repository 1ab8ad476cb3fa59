package service

import (
	"errors"

	apperrors "moto-catalog-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// translateStoreError maps a repository error onto the application taxonomy.
// notFound is returned for gorm.ErrRecordNotFound; unique violations become
// ConflictError; anything else is wrapped with the operation and key.
func translateStoreError(op, entity, key string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.NewConflictError(entity, key, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewConflictError(entity, key, err)
	}
	return apperrors.NewStoreError(op, key, err)
}
