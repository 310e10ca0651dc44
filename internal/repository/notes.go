package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/internal/repository/converter"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

const (
	listNotesQuery  = `SELECT * FROM notes ORDER BY id LIMIT $1 OFFSET $2`
	createNoteQuery = `INSERT INTO notes (title, content, category) VALUES ($1, $2, $3) RETURNING *`
)

func (r *Repo) ListNotes(ctx context.Context, limit, offset int) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx, listNotesQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.NoteRow])
	if err != nil {
		return nil, fmt.Errorf("collect notes: %w", err)
	}

	return converter.ConvertNotesToEntity(notes), nil
}

func (r *Repo) CreateNote(ctx context.Context, in entity.CreateNote) (entity.Note, error) {
	rows, err := r.db.Query(ctx, createNoteQuery, in.Title, in.Content, in.Category)
	if err != nil {
		return entity.Note{}, classify("notes", fmt.Errorf("create note: %w", err))
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.NoteRow])
	if err != nil {
		return entity.Note{}, classify("notes", fmt.Errorf("create note: %w", err))
	}

	slogx.Debug(ctx, "success to create note", slogx.Op("repository.CreateNote"))

	return converter.ConvertNoteToEntity(row), nil
}
