package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", pgx.ErrNoRows, ErrNotFound},
		{"unique violation becomes conflict", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"connection failure becomes unavailable", &pgconn.PgError{Code: "08006"}, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in, "op")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrorContextPassesThrough(t *testing.T) {
	got := mapError(context.Canceled, "op")
	assert.ErrorIs(t, got, context.Canceled)
	assert.NotErrorIs(t, got, ErrNotFound)
}

func TestMapErrorUnknownWrapped(t *testing.T) {
	underlying := errors.New("boom")
	got := mapError(underlying, "create plan")
	assert.ErrorIs(t, got, underlying)
	assert.Contains(t, got.Error(), "create plan")
}
