package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// fakeExecutor возвращает заданную ошибку на любой запрос
type fakeExecutor struct {
	err error
}

func (f *fakeExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestCancel_DriverErrorStaysInChain(t *testing.T) {
	// Ошибки драйвера оборачиваются через %w: конфликт сериализации
	// внутри транзакции должен доходить до менеджера транзакций
	driverErr := &pq.Error{Code: "40001", Message: "could not serialize access"}
	repo := NewRepository(&fakeExecutor{err: driverErr})

	err := repo.Cancel(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestGetForConflictCheck_DriverErrorStaysInChain(t *testing.T) {
	driverErr := &pq.Error{Code: "40001", Message: "could not serialize access"}
	repo := NewRepository(&fakeExecutor{err: driverErr})

	_, err := repo.GetForConflictCheck(context.Background(), domain.ConflictFilter{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestIsUniqueSlotViolation(t *testing.T) {
	slotViolation := &pq.Error{Code: "23505", Constraint: "uq_appointments_slot"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "slot index violation", err: slotViolation, want: true},
		{name: "wrapped slot index violation", err: fmt.Errorf("insert: %w", slotViolation), want: true},
		{name: "other unique index", err: &pq.Error{Code: "23505", Constraint: "uq_other"}, want: false},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueSlotViolation(tt.err))
		})
	}
}
