package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-api/pkg/database"
)

func TestNewPGX_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts database.Options
	}{
		{"empty dsn", database.NewOptions("")},
		{"zero max conns", database.NewOptions("postgres://localhost/notes", database.WithMaxConns(0))},
		{"too many attempts", database.NewOptions("postgres://localhost/notes", database.WithRetryAttempts(11))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pool, err := database.NewPGX(context.Background(), tc.opts)
			require.Error(t, err)
			assert.Nil(t, pool)
			assert.Contains(t, err.Error(), "validate options for pgx")
		})
	}
}

func TestNewPGX_MalformedDSN(t *testing.T) {
	pool, err := database.NewPGX(context.Background(), database.NewOptions("://definitely not a dsn"))
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "parse pgx pool config")
}
