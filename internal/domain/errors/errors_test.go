package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"harvest/internal/errors"
)

func TestBaseError_IsMatchesCodeAcrossDetails(t *testing.T) {
	err := ErrInsufficientStock.WithDetails("requested 5, available 2")

	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.False(t, errors.Is(err, ErrAlreadySold))
	assert.Equal(t, "requested 5, available 2", err.Details())
	assert.True(t, errors.Is(errors.Wrap(err, "create order"), ErrInsufficientStock))
}

func TestIsStorageFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "database error", err: NewDatabaseExecuteError(errors.New("conn reset"), "insert"), want: true},
		{name: "wrapped database error", err: errors.Wrap(NewDatabaseExecuteError(context.DeadlineExceeded, ""), "tx"), want: true},
		{name: "transaction failed", err: ErrTransactionFailed.WithDetails("commit"), want: true},
		{name: "business error", err: ErrInsufficientStock, want: false},
		{name: "not found", err: ErrNotFound, want: false},
		{name: "unknown error", err: errors.New("boom"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStorageFailure(tt.err))
		})
	}
}
