package system_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evgeniy-krivenko/notes-api/internal/api/system"
)

func TestHandlers(t *testing.T) {
	cases := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{"home", system.Home, http.StatusOK, `{"status":"success","message":"Default home"}`},
		{"health", system.Health, http.StatusOK, `{"status":"success","message":"Simple CRUD API with Go, pgx, Postgres and chi"}`},
		{"debug logs", system.DebugLogs, http.StatusNotImplemented, `{"status":"error","message":"not implemented"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
