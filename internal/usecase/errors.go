package usecase

import (
	"context"
	"errors"
	"strings"

	"healthcare-qms/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// actorFromContext resolves the authenticated staff user for audit
// attribution. Unauthenticated flows (patient portal) yield nil.
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation on the given constraint name fragment.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// constraint violation on the given constraint name fragment.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
