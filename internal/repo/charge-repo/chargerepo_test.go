package chargerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_ListByRepairIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		repairIDs []int
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name:      "Charges grouped by repair",
			repairIDs: []int{3},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "repair_id", "amount", "description", "created_at"}).
					AddRow(1, 3, decimal.RequireFromString("300"), "Screen replacement", now).
					AddRow(2, 3, decimal.RequireFromString("200"), "Battery", now.Add(time.Minute))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, repair_id, amount, description, created_at FROM charges WHERE repair_id = ANY($1) ORDER BY created_at ASC`)).
					WithArgs([]int{3}).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name:      "Empty id list skips the query",
			repairIDs: nil,
			mockSetup: func() {},
		},
		{
			name:      "Database error",
			repairIDs: []int{3},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, repair_id, amount, description, created_at FROM charges WHERE repair_id = ANY($1) ORDER BY created_at ASC`)).
					WithArgs([]int{3}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			charges, err := repo.ListByRepairIDs(context.Background(), tt.repairIDs)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, charges[3], tt.expectLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
