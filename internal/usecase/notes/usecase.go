package notes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

type notesRepository interface {
	ListNotes(ctx context.Context, limit, offset int) ([]entity.Note, error)
	CreateNote(ctx context.Context, in entity.CreateNote) (entity.Note, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListNotes(ctx context.Context, limit, offset int) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) CreateNote(ctx context.Context, in entity.CreateNote) (entity.Note, error) {
	note, err := u.repo.CreateNote(ctx, in)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slog.String("note_id", note.ID.String()))

	return note, nil
}
