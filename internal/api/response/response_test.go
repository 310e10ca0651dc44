package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/internal/api/response"
)

func TestList(t *testing.T) {
	env := response.List("notes", []string{"a", "b"})

	assert.Equal(t, response.StatusSuccess, env["status"])
	assert.Equal(t, 2, env["results"])
	assert.Equal(t, []string{"a", "b"}, env["notes"])
}

func TestList_NilItemsEncodeAsEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	response.Render(rec, req, http.StatusOK, response.List[int]("users", nil))

	assert.JSONEq(t, `{"status":"success","results":0,"users":[]}`, rec.Body.String())
}

func TestRender(t *testing.T) {
	cases := []struct {
		name   string
		status int
		env    response.Envelope
		want   string
	}{
		{"message", http.StatusOK, response.Message("Default home"), `{"status":"success","message":"Default home"}`},
		{"data", http.StatusCreated, response.Data("note", map[string]string{"title": "t1"}), `{"status":"success","data":{"note":{"title":"t1"}}}`},
		{"fail", http.StatusConflict, response.Fail("exists"), `{"status":"fail","message":"exists"}`},
		{"error", http.StatusInternalServerError, response.Error("boom"), `{"status":"error","message":"boom"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			response.Render(rec, req, tc.status, tc.env)

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}

func TestValidationFail(t *testing.T) {
	type body struct {
		Title   string `validate:"required"`
		Content string `validate:"required"`
		Email   string `validate:"omitempty,email"`
	}

	err := validator.New().Struct(body{Title: "t", Email: "nope"})
	require.Error(t, err)

	env := response.ValidationFail(err.(validator.ValidationErrors))

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"status":"fail","message":"field Content is a required field, field Email is not valid"}`,
		string(raw),
	)
}
