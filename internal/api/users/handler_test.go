package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/internal/api/users"
	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

type fakeUsecase struct {
	users []entity.User
	err   error

	created []entity.CreateUser
}

func (f *fakeUsecase) ListUsers(context.Context, int, int) ([]entity.User, error) {
	return f.users, f.err
}

func (f *fakeUsecase) CreateUser(_ context.Context, in entity.CreateUser) (entity.User, error) {
	if f.err != nil {
		return entity.User{}, f.err
	}
	f.created = append(f.created, in)
	return entity.User{ID: uuid.MustParse("7f1d4c5e-0000-4000-8000-000000000001"), Name: in.Name, DisplayName: in.DisplayName, Email: in.Email}, nil
}

func TestList(t *testing.T) {
	name := "ada"
	h := users.New(&fakeUsecase{users: []entity.User{{ID: uuid.Nil, Name: &name}}})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/users?page=1&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"results": 1,
		"users": [{
			"id": "00000000-0000-0000-0000-000000000000",
			"name": "ada",
			"display_name": null,
			"email": null,
			"createdAt": null,
			"updatedAt": null
		}]
	}`, rec.Body.String())
}

func TestList_Failure(t *testing.T) {
	h := users.New(&fakeUsecase{err: errors.New("timeout")})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"status":"fail","message":"Something bad happened while fetching all user items"}`,
		rec.Body.String(),
	)
}

func TestCreate(t *testing.T) {
	uc := &fakeUsecase{}
	h := users.New(uc)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name":"ada","display_name":"Ada L.","email":"ada@example.com"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, uc.created, 1)
	require.NotNil(t, uc.created[0].DisplayName)
	assert.Equal(t, "Ada L.", *uc.created[0].DisplayName)
	assert.JSONEq(t, `{
		"status": "success",
		"data": {"user": {
			"id": "7f1d4c5e-0000-4000-8000-000000000001",
			"name": "ada",
			"display_name": "Ada L.",
			"email": "ada@example.com",
			"createdAt": null,
			"updatedAt": null
		}}
	}`, rec.Body.String())
}

func TestCreate_Errors(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "duplicate",
			body:       `{"name":"ada"}`,
			err:        &entity.ConstraintViolationError{Table: "users"},
			wantStatus: http.StatusConflict,
			wantBody:   `{"status":"fail","message":"User with that id/name already exists"}`,
		},
		{
			name:       "store failure",
			body:       `{"name":"ada"}`,
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","message":"disk full"}`,
		},
		{
			name:       "malformed body",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"fail","message":"failed to decode request"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := users.New(&fakeUsecase{err: tc.err})

			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestCreate_LogsRejectedRequests(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, slogx.InitGlobal(&buf, "debug", false))
	t.Cleanup(func() { slogx.SetDefault(slogx.New(slog.Default().Handler())) })

	cases := []struct {
		name      string
		body      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{"duplicate", `{"name":"ada"}`, &entity.ConstraintViolationError{Table: "users"}, "INFO", "user already exists"},
		{"malformed body", `{`, nil, "WARN", "failed to decode request body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			h := users.New(&fakeUsecase{err: tc.err})

			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tc.body)))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, tc.wantMsg, entry["msg"])
			assert.Equal(t, "api.users.Create", entry["op"])
		})
	}
}
