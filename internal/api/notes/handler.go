package notes

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
	msgFetchFailed = "Something bad happened while fetching all note items"
	msgTitleExists = "Note with that title already exists"
)

type notesUsecase interface {
	ListNotes(ctx context.Context, limit, offset int) ([]entity.Note, error)
	CreateNote(ctx context.Context, in entity.CreateNote) (entity.Note, error)
}

type CreateRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Category *string `json:"category"`
}

type Handler struct {
	uc notesUsecase
}

func New(uc notesUsecase) *Handler {
	return &Handler{uc: uc}
}

// List serves GET /api/notes?page=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "api.notes.List"
	ctx := r.Context()

	page := pagination.FromQuery(r.URL.Query())

	notes, err := h.uc.ListNotes(ctx, page.Limit, page.Offset)
	if err != nil {
		slogx.Error(ctx, "failed to list notes", slogx.Op(op), slogx.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Fail(msgFetchFailed))
		return
	}

	response.Render(w, r, http.StatusOK, response.List("notes", notes))
}

// Create serves POST /api/notes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "api.notes.Create"
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

	in := entity.CreateNote{Title: req.Title, Content: req.Content}
	if req.Category != nil {
		in.Category = *req.Category
	}

	note, err := h.uc.CreateNote(ctx, in)
	switch {
	case errors.Is(err, entity.ErrAlreadyExists):
		slogx.Info(ctx, "note title already exists", slogx.Op(op), slog.String("title", req.Title))
		response.Render(w, r, http.StatusConflict, response.Fail(msgTitleExists))
		return
	case err != nil:
		slogx.Error(ctx, "failed to create note", slogx.Op(op), slogx.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	response.Render(w, r, http.StatusCreated, response.Data("note", note))
}
