package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsCardReferenceConflict(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "card reference index",
			err:  &pq.Error{Code: uniqueViolation, Constraint: cardReferenceIndexName},
			want: true,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolation, Constraint: cardReferenceIndexName}),
			want: true,
		},
		{
			name: "other unique index",
			err:  &pq.Error{Code: uniqueViolation, Constraint: "orders_pkey"},
		},
		{
			name: "other error code",
			err:  &pq.Error{Code: "23514", Constraint: cardReferenceIndexName},
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection reset"),
		},
		{
			name: "nil",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isCardReferenceConflict(tc.err))
		})
	}
}
