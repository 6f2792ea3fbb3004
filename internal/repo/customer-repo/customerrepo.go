package customerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	query := `
        SELECT id, name, phone, phone2, email, address, created_at
        FROM customers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, customerID)

	var customer domain.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Phone2, &customer.Email, &customer.Address, &customer.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	return &customer, nil
}
