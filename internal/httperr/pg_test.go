package httperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/pkg/errs"
)

func TestPgViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	exclusion := &pgconn.PgError{Code: "23P01"}

	tests := []struct {
		name      string
		err       error
		unique    bool
		exclusion bool
	}{
		{name: "nil", err: nil},
		{name: "unique", err: unique, unique: true},
		{name: "unique wrapped by fmt", err: fmt.Errorf("create: %w", unique), unique: true},
		{name: "unique wrapped by errs", err: errs.Wrap(unique, "claim"), unique: true},
		{name: "exclusion", err: errs.Wrap(exclusion, "slot"), exclusion: true},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}},
		{name: "plain", err: errors.New("duplicate key value")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, httperr.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.exclusion, httperr.IsExclusionConflict(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	err := errs.Wrap(httperr.ErrBusiness("time_conflict"), "create")
	assert.Equal(t, "time_conflict", httperr.Code(err))
	assert.Equal(t, "", httperr.Code(errors.New("x")))
}
