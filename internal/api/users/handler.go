package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/notes-api/internal/api/pagination"
	"github.com/evgeniy-krivenko/notes-api/internal/api/request"
	"github.com/evgeniy-krivenko/notes-api/internal/api/response"
	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

const (
	msgFetchFailed = "Something bad happened while fetching all user items"
	msgUserExists  = "User with that id/name already exists"
)

type usersUsecase interface {
	ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error)
	CreateUser(ctx context.Context, in entity.CreateUser) (entity.User, error)
}

// CreateRequest fields are passed to the store as they come.
type CreateRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

type Handler struct {
	uc usersUsecase
}

func New(uc usersUsecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "api.users.List"
	ctx := r.Context()

	page := pagination.FromQuery(r.URL.Query())

	users, err := h.uc.ListUsers(ctx, page.Limit, page.Offset)
	if err != nil {
		slogx.Error(ctx, "failed to list users", slogx.Op(op), slogx.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Fail(msgFetchFailed))
		return
	}

	response.Render(w, r, http.StatusOK, response.List("users", users))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "api.users.Create"
	ctx := r.Context()

	var req CreateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			slogx.Warn(ctx, "invalid request", slogx.Op(op), slogx.Err(err))
			response.Render(w, r, http.StatusBadRequest, response.ValidationFail(verrs))
			return
		}

		slogx.Warn(ctx, "failed to decode request body", slogx.Op(op), slogx.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Fail("failed to decode request"))
		return
	}

	user, err := h.uc.CreateUser(ctx, entity.CreateUser{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	switch {
	case errors.Is(err, entity.ErrAlreadyExists):
		slogx.Info(ctx, "user already exists", slogx.Op(op), slog.String("name", deref(req.Name)))
		response.Render(w, r, http.StatusConflict, response.Fail(msgUserExists))
		return
	case err != nil:
		slogx.Error(ctx, "failed to create user", slogx.Op(op), slogx.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	response.Render(w, r, http.StatusCreated, response.Data("user", user))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
