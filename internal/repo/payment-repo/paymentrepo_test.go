package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nirajkarki/repairdesk/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := &domain.Payment{
		RepairID:   3,
		Amount:     decimal.RequireFromString("500"),
		Method:     domain.MethodCash,
		ReceivedBy: 1,
		ReceivedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(12)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments (repair_id, amount, method, received_by, received_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
					WithArgs(payment.RepairID, payment.Amount, payment.Method, payment.ReceivedBy, payment.ReceivedAt).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments (repair_id, amount, method, received_by, received_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
					WithArgs(payment.RepairID, payment.Amount, payment.Method, payment.ReceivedBy, payment.ReceivedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), payment)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 12, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SumByRepairIDs(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		repairIDs []int
		mockSetup func()
		expectErr bool
		result    map[int]string
	}{
		{
			name:      "Sums per repair",
			repairIDs: []int{3, 4},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"repair_id", "coalesce"}).
					AddRow(3, decimal.RequireFromString("200")).
					AddRow(4, decimal.RequireFromString("50"))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT repair_id, COALESCE(SUM(amount), 0) FROM payments WHERE repair_id = ANY($1) GROUP BY repair_id`)).
					WithArgs([]int{3, 4}).
					WillReturnRows(rows)
			},
			result: map[int]string{3: "200", 4: "50"},
		},
		{
			name:      "Empty id list skips the query",
			repairIDs: nil,
			mockSetup: func() {},
			result:    map[int]string{},
		},
		{
			name:      "Database error",
			repairIDs: []int{3},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT repair_id, COALESCE(SUM(amount), 0) FROM payments WHERE repair_id = ANY($1) GROUP BY repair_id`)).
					WithArgs([]int{3}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			sums, err := repo.SumByRepairIDs(context.Background(), tt.repairIDs)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, sums, len(tt.result))
			for id, want := range tt.result {
				assert.True(t, decimal.RequireFromString(want).Equal(sums[id]))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByRepairIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, repair_id, amount, method, received_by, received_at FROM payments WHERE repair_id = ANY($1) ORDER BY received_at ASC`)).
		WithArgs([]int{3}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "repair_id", "amount", "method", "received_by", "received_at"}).
			AddRow(12, 3, decimal.RequireFromString("200"), domain.MethodCash, 1, now).
			AddRow(13, 3, decimal.RequireFromString("100"), domain.MethodCard, 1, now.Add(time.Hour)))

	payments, err := repo.ListByRepairIDs(context.Background(), []int{3})
	assert.NoError(t, err)
	assert.Len(t, payments[3], 2)
	assert.Equal(t, 12, payments[3][0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
