package chargerepo

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

func (r *Repository) ListByRepairIDs(ctx context.Context, repairIDs []int) (map[int][]domain.Charge, error) {
	charges := make(map[int][]domain.Charge, len(repairIDs))
	if len(repairIDs) == 0 {
		return charges, nil
	}
	query := `
        SELECT id, repair_id, amount, description, created_at
        FROM charges
        WHERE repair_id = ANY($1)
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, repairIDs)
	if err != nil {
		zap.L().Error("failed to fetch charges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Charge
		err := rows.Scan(&c.ID, &c.RepairID, &c.Amount, &c.Description, &c.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan charge row", zap.Error(err))
			return nil, err
		}
		charges[c.RepairID] = append(charges[c.RepairID], c)
	}
	return charges, nil
}
