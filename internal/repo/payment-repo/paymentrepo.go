package paymentrepo

import (
	"context"

	"github.com/shopspring/decimal"
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

// Create inserts one payment row. Payments are never updated or deleted.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (repair_id, amount, method, received_by, received_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, payment.RepairID, payment.Amount, payment.Method, payment.ReceivedBy, payment.ReceivedAt).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// SumByRepairIDs returns the amount paid so far per repair. Repairs with
// no payments are absent from the map.
func (r *Repository) SumByRepairIDs(ctx context.Context, repairIDs []int) (map[int]decimal.Decimal, error) {
	sums := make(map[int]decimal.Decimal, len(repairIDs))
	if len(repairIDs) == 0 {
		return sums, nil
	}
	query := `
        SELECT repair_id, COALESCE(SUM(amount), 0)
        FROM payments
        WHERE repair_id = ANY($1)
        GROUP BY repair_id
    `
	rows, err := r.db.Query(ctx, query, repairIDs)
	if err != nil {
		zap.L().Error("failed to sum payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var repairID int
		var paid decimal.Decimal
		if err := rows.Scan(&repairID, &paid); err != nil {
			zap.L().Error("failed to scan payment sum row", zap.Error(err))
			return nil, err
		}
		sums[repairID] = paid
	}
	return sums, nil
}

func (r *Repository) ListByRepairIDs(ctx context.Context, repairIDs []int) (map[int][]domain.Payment, error) {
	payments := make(map[int][]domain.Payment, len(repairIDs))
	if len(repairIDs) == 0 {
		return payments, nil
	}
	query := `
        SELECT id, repair_id, amount, method, received_by, received_at
        FROM payments
        WHERE repair_id = ANY($1)
        ORDER BY received_at ASC
    `
	rows, err := r.db.Query(ctx, query, repairIDs)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.RepairID, &p.Amount, &p.Method, &p.ReceivedBy, &p.ReceivedAt)
		if err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments[p.RepairID] = append(payments[p.RepairID], p)
	}
	return payments, nil
}
