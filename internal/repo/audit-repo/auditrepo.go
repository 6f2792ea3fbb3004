package auditrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/nirajkarki/repairdesk/internal/domain"
	"github.com/nirajkarki/repairdesk/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append inserts one audit entry. The log is append-only, so this is the
// only mutation exposed.
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_log (actor_id, repair_id, entity_type, entity_id, action, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		entry.ActorID, entry.RepairID, entry.EntityType, entry.EntityID,
		entry.Action, entry.Metadata, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't append audit entry", zap.Error(err))
		return err
	}
	return nil
}

// ListByRepairID returns the repair's audit trail oldest first.
func (r *Repository) ListByRepairID(ctx context.Context, repairID int) ([]domain.AuditEntry, error) {
	query := `
        SELECT id, actor_id, repair_id, entity_type, entity_id, action, metadata, created_at
        FROM audit_log
        WHERE repair_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, repairID)
	if err != nil {
		zap.L().Error("failed to fetch audit trail", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		err := rows.Scan(&e.ID, &e.ActorID, &e.RepairID, &e.EntityType, &e.EntityID, &e.Action, &e.Metadata, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
