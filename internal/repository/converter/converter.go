package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
)

// NoteRow mirrors a row of the notes table.
type NoteRow struct {
	ID        pgtype.UUID        `db:"id"`
	Title     string             `db:"title"`
	Content   string             `db:"content"`
	Category  pgtype.Text        `db:"category"`
	Published pgtype.Bool        `db:"published"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

// UserRow mirrors a row of the users table.
type UserRow struct {
	ID          pgtype.UUID        `db:"id"`
	Name        pgtype.Text        `db:"name"`
	DisplayName pgtype.Text        `db:"display_name"`
	Email       pgtype.Text        `db:"email"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

func ConvertNoteToEntity(row NoteRow) entity.Note {
	return entity.Note{
		ID:        ConvertUUID(row.ID),
		Title:     row.Title,
		Content:   row.Content,
		Category:  ConvertTextToString(row.Category),
		Published: ConvertBoolToBool(row.Published),
		CreatedAt: ConvertTimestamptzToTime(row.CreatedAt),
		UpdatedAt: ConvertTimestamptzToTime(row.UpdatedAt),
	}
}

func ConvertNotesToEntity(rows []NoteRow) []entity.Note {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, ConvertNoteToEntity(row))
	}

	return notes
}

func ConvertUserToEntity(row UserRow) entity.User {
	return entity.User{
		ID:          ConvertUUID(row.ID),
		Name:        ConvertTextToString(row.Name),
		DisplayName: ConvertTextToString(row.DisplayName),
		Email:       ConvertTextToString(row.Email),
		CreatedAt:   ConvertTimestamptzToTime(row.CreatedAt),
		UpdatedAt:   ConvertTimestamptzToTime(row.UpdatedAt),
	}
}

func ConvertUsersToEntity(rows []UserRow) []entity.User {
	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, ConvertUserToEntity(row))
	}

	return users
}

func ConvertUUID(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}

	return uuid.UUID(id.Bytes)
}

func ConvertTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	return &t.String
}

func ConvertBoolToBool(b pgtype.Bool) *bool {
	if !b.Valid {
		return nil
	}

	return &b.Bool
}

func ConvertTimestamptzToTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func ConvertStringToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}
