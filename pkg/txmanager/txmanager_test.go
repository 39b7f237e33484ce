package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "bare driver error", err: serialization, want: true},
		{
			// Ошибка уровня стейтмента проходит через обёртки репозитория
			// и usecase и обязана остаться распознаваемой для повтора
			name: "wrapped twice",
			err: fmt.Errorf("storage unavailable: failed to get appointments: %w",
				fmt.Errorf("failed to execute query: %w", serialization)),
			want: true,
		},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
