package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

type usersRepository interface {
	ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error)
	CreateUser(ctx context.Context, in entity.CreateUser) (entity.User, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo usersRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate users usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	users, err := u.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("usecase list users: %w", err)
	}

	return users, nil
}

func (u *Usecase) CreateUser(ctx context.Context, in entity.CreateUser) (entity.User, error) {
	user, err := u.repo.CreateUser(ctx, in)
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase create user: %w", err)
	}

	slogx.Info(ctx, "success to create user", slog.String("user_id", user.ID.String()))

	return user, nil
}
