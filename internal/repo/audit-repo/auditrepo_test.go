package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	entry := &domain.AuditEntry{
		ActorID:    1,
		RepairID:   3,
		EntityType: "Repair",
		EntityID:   3,
		Action:     domain.ActionPaymentReceived,
		Metadata:   []byte(`{"amount":"500","locked":true}`),
		CreatedAt:  now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful append",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(21)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_log (actor_id, repair_id, entity_type, entity_id, action, metadata, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)).
					WithArgs(entry.ActorID, entry.RepairID, entry.EntityType, entry.EntityID, entry.Action, entry.Metadata, entry.CreatedAt).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_log (actor_id, repair_id, entity_type, entity_id, action, metadata, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)).
					WithArgs(entry.ActorID, entry.RepairID, entry.EntityType, entry.EntityID, entry.Action, entry.Metadata, entry.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Append(context.Background(), entry)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 21, entry.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByRepairID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Entries in chronological order",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "actor_id", "repair_id", "entity_type", "entity_id", "action", "metadata", "created_at"}).
					AddRow(1, 1, 3, "Repair", 3, domain.ActionPaymentReceived, []byte(`{"amount":"200"}`), now).
					AddRow(2, 1, 3, "Repair", 3, domain.ActionPaymentReceived, []byte(`{"amount":"300"}`), now.Add(time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, actor_id, repair_id, entity_type, entity_id, action, metadata, created_at FROM audit_log WHERE repair_id = $1 ORDER BY created_at ASC`)).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, actor_id, repair_id, entity_type, entity_id, action, metadata, created_at FROM audit_log WHERE repair_id = $1 ORDER BY created_at ASC`)).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entries, err := repo.ListByRepairID(context.Background(), 3)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, entries, tt.expectLen)
			assert.Equal(t, 1, entries[0].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
