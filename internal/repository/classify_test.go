package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
)

func TestClassify(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			TableName:      "notes",
			ConstraintName: "notes_title_key",
		}

		err := classify("notes", fmt.Errorf("create note: %w", pgErr))

		require.ErrorIs(t, err, entity.ErrAlreadyExists)

		var cv *entity.ConstraintViolationError
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "notes", cv.Table)
		assert.Equal(t, "notes_title_key", cv.Constraint)
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("table name falls back to caller", func(t *testing.T) {
		err := classify("users", &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		var cv *entity.ConstraintViolationError
		require.ErrorAs(t, err, &cv)
		assert.Equal(t, "users", cv.Table)
	})

	t.Run("other pg error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation}

		err := classify("notes", pgErr)

		assert.NotErrorIs(t, err, entity.ErrAlreadyExists)
		assert.Same(t, pgErr, err)
	})

	t.Run("non pg error", func(t *testing.T) {
		in := errors.New("connection reset")

		assert.Equal(t, in, classify("notes", in))
	})
}
