package repairrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nirajkarki/repairdesk/internal/domain"
	"github.com/nirajkarki/repairdesk/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const repairColumns = `id, customer_id, ticket_number, device, status, total_charges, is_locked, staff_share, shop_share, technician_id, created_at`

func scanRepair(row pgx.Row) (*domain.Repair, error) {
	var repair domain.Repair
	err := row.Scan(
		&repair.ID, &repair.CustomerID, &repair.TicketNumber, &repair.Device, &repair.Status,
		&repair.TotalCharges, &repair.IsLocked, &repair.StaffShare, &repair.ShopShare,
		&repair.TechnicianID, &repair.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &repair, nil
}

// FindBillableByCustomer returns the customer's billable repairs ordered
// oldest first, the allocation order.
func (r *Repository) FindBillableByCustomer(ctx context.Context, customerID int) ([]domain.Repair, error) {
	query := `
        SELECT ` + repairColumns + `
        FROM repairs
        WHERE customer_id = $1 AND status = ANY($2)
        ORDER BY created_at ASC
    `
	return r.findByCustomer(ctx, query, customerID)
}

// FindBillableByCustomerForUpdate is FindBillableByCustomer with the rows
// locked for the duration of the surrounding transaction. Concurrent
// payments for the same customer serialize on these locks.
func (r *Repository) FindBillableByCustomerForUpdate(ctx context.Context, customerID int) ([]domain.Repair, error) {
	query := `
        SELECT ` + repairColumns + `
        FROM repairs
        WHERE customer_id = $1 AND status = ANY($2)
        ORDER BY created_at ASC
        FOR UPDATE
    `
	return r.findByCustomer(ctx, query, customerID)
}

func (r *Repository) findByCustomer(ctx context.Context, query string, customerID int) ([]domain.Repair, error) {
	rows, err := r.db.Query(ctx, query, customerID, domain.BillableStatuses)
	if err != nil {
		zap.L().Error("can't get repairs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var repairs []domain.Repair
	for rows.Next() {
		repair, err := scanRepair(rows)
		if err != nil {
			zap.L().Error("can't scan repair row", zap.Error(err))
			return nil, err
		}
		repairs = append(repairs, *repair)
	}
	return repairs, nil
}

func (r *Repository) FindByTicketNumber(ctx context.Context, ticketNumber string) (*domain.Repair, error) {
	query := `
        SELECT ` + repairColumns + `
        FROM repairs
        WHERE ticket_number = $1
    `
	repair, err := scanRepair(r.db.QueryRow(ctx, query, ticketNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find repair by ticket", zap.Error(err))
		return nil, err
	}
	return repair, nil
}

// UpdateSettlement persists the lock flag and commission split computed
// when a repair becomes fully paid.
func (r *Repository) UpdateSettlement(ctx context.Context, repairID int, locked bool, staffShare, shopShare decimal.Decimal) error {
	query := `
        UPDATE repairs
        SET is_locked = $1, staff_share = $2, shop_share = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, locked, staffShare, shopShare, repairID)
		if err != nil {
			zap.L().Error("failed to update repair settlement", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
