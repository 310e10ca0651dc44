package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
)

type Repo struct {
	db database.Querier
}

func New(db database.Querier) *Repo {
	return &Repo{db: db}
}

// classify turns driver errors into entity errors callers can match on.
func classify(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if pgErr.TableName != "" {
			table = pgErr.TableName
		}

		return &entity.ConstraintViolationError{
			Table:      table,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	return err
}
