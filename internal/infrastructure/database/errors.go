package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"eduhack/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// Constraint violations per kind of write.
var (
	referencesHackathon = map[string]error{codeForeignKeyViolation: domain.ErrHackathonNotFound}
	referencedHackathon = map[string]error{codeForeignKeyViolation: domain.ErrHackathonInUse}
	uniqueEmail         = map[string]error{codeUniqueViolation: domain.ErrEmailTaken}
)

// writeError maps a failed write named op. Codes in byCode become their domain
// error, a notFound raised inside the write is returned bare, and anything else
// is wrapped.
func writeError(op string, err, notFound error, byCode map[string]error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := byCode[pgCode(err)]; ok {
		return mapped
	}
	if notFound != nil && errors.Is(err, notFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// orNotFound replaces pgx.ErrNoRows by the given sentinel.
func orNotFound(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}

// affected reports notFound when a write touched no row.
func affected(tag pgconn.CommandTag, notFound error) error {
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
