package billingservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nirajkarki/repairdesk/internal/allocation"
	"github.com/nirajkarki/repairdesk/internal/domain"
	"github.com/nirajkarki/repairdesk/internal/pg"
	"github.com/nirajkarki/repairdesk/internal/settlement"
)

//go:generate mockgen -source=billingservice.go -destination=billingservice_mock.go -package=billingservice

type CustomerRepo interface {
	GetByID(ctx context.Context, customerID int) (*domain.Customer, error)
}

type RepairRepo interface {
	FindBillableByCustomer(ctx context.Context, customerID int) ([]domain.Repair, error)
	FindBillableByCustomerForUpdate(ctx context.Context, customerID int) ([]domain.Repair, error)
	FindByTicketNumber(ctx context.Context, ticketNumber string) (*domain.Repair, error)
	UpdateSettlement(ctx context.Context, repairID int, locked bool, staffShare, shopShare decimal.Decimal) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	SumByRepairIDs(ctx context.Context, repairIDs []int) (map[int]decimal.Decimal, error)
	ListByRepairIDs(ctx context.Context, repairIDs []int) (map[int][]domain.Payment, error)
}

type ChargeRepo interface {
	ListByRepairIDs(ctx context.Context, repairIDs []int) (map[int][]domain.Charge, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	ListByRepairID(ctx context.Context, repairID int) ([]domain.AuditEntry, error)
}

// Notifier receives a receipt after a payment has been committed.
// Implementations must not block.
type Notifier interface {
	PaymentReceived(customer *domain.Customer, amount, remainingDue decimal.Decimal)
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRepairNotFound   = errors.New("repair not found")
)

type Service struct {
	customerRepo CustomerRepo
	repairRepo   RepairRepo
	paymentRepo  PaymentRepo
	chargeRepo   ChargeRepo
	userRepo     UserRepo
	auditRepo    AuditRepo
	txManager    pg.TXManager
	notifier     Notifier
}

func New(
	customerRepo CustomerRepo,
	repairRepo RepairRepo,
	paymentRepo PaymentRepo,
	chargeRepo ChargeRepo,
	userRepo UserRepo,
	auditRepo AuditRepo,
	txManager pg.TXManager,
	notifier Notifier,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		repairRepo:   repairRepo,
		paymentRepo:  paymentRepo,
		chargeRepo:   chargeRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		notifier:     notifier,
	}
}

// BillingItem is one billable repair with its derived ledger figures.
type BillingItem struct {
	Repair   domain.Repair
	Total    decimal.Decimal
	Paid     decimal.Decimal
	Due      decimal.Decimal
	Charges  []domain.Charge
	Payments []domain.Payment
}

// BillingSummary is the combined billing view for one customer.
type BillingSummary struct {
	Customer      *domain.Customer
	Items         []BillingItem
	CombinedTotal decimal.Decimal
	CombinedPaid  decimal.Decimal
	CombinedDue   decimal.Decimal
}

// GetCustomerBilling returns the customer's billable repairs oldest first
// with per-repair and combined totals. Settled repairs stay in the list
// for the combined figures even though they can take no further payment.
func (s *Service) GetCustomerBilling(ctx context.Context, customerID int) (*BillingSummary, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	repairs, err := s.repairRepo.FindBillableByCustomer(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get billable repairs", zap.Error(err))
		return nil, err
	}

	repairIDs := make([]int, len(repairs))
	for i, repair := range repairs {
		repairIDs[i] = repair.ID
	}

	paidSums, err := s.paymentRepo.SumByRepairIDs(ctx, repairIDs)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByRepairIDs(ctx, repairIDs)
	if err != nil {
		return nil, err
	}
	charges, err := s.chargeRepo.ListByRepairIDs(ctx, repairIDs)
	if err != nil {
		return nil, err
	}

	summary := &BillingSummary{
		Customer:      customer,
		Items:         make([]BillingItem, 0, len(repairs)),
		CombinedTotal: decimal.Zero,
		CombinedPaid:  decimal.Zero,
		CombinedDue:   decimal.Zero,
	}
	for _, repair := range repairs {
		paid := paidSums[repair.ID]
		item := BillingItem{
			Repair:   repair,
			Total:    repair.TotalCharges,
			Paid:     paid,
			Due:      repair.TotalCharges.Sub(paid),
			Charges:  charges[repair.ID],
			Payments: payments[repair.ID],
		}
		summary.Items = append(summary.Items, item)
		summary.CombinedTotal = summary.CombinedTotal.Add(item.Total)
		summary.CombinedPaid = summary.CombinedPaid.Add(item.Paid)
		summary.CombinedDue = summary.CombinedDue.Add(item.Due)
	}
	return summary, nil
}

// GetRepairByTicket resolves a repair from its printed ticket number.
func (s *Service) GetRepairByTicket(ctx context.Context, ticketNumber string) (*domain.Repair, error) {
	repair, err := s.repairRepo.FindByTicketNumber(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, ErrRepairNotFound
	}
	return repair, nil
}

// GetAuditTrail returns the audit entries recorded against a repair.
func (s *Service) GetAuditTrail(ctx context.Context, repairID int) ([]domain.AuditEntry, error) {
	entries, err := s.auditRepo.ListByRepairID(ctx, repairID)
	if err != nil {
		zap.L().Error("failed to fetch audit trail", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

type paymentMetadata struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	NewPaid decimal.Decimal `json:"newPaid"`
	Total   decimal.Decimal `json:"total"`
	Locked  bool            `json:"locked"`
}

// ApplyPayment distributes amount across the customer's open repairs
// oldest first, settling any repair the payment completes. Everything
// runs inside one transaction with the customer's repair rows locked:
// either every payment, settlement update and audit entry is committed,
// or none of them are.
func (s *Service) ApplyPayment(ctx context.Context, customerID int, amount decimal.Decimal, method string, actorID int) ([]domain.Payment, error) {
	if err := allocation.Validate(amount, method); err != nil {
		return nil, err
	}

	var created []domain.Payment
	var customer *domain.Customer
	var remainingDue decimal.Decimal

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		customer, err = s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			zap.L().Error("failed to get customer", zap.Error(err))
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}

		repairs, err := s.repairRepo.FindBillableByCustomerForUpdate(ctx, customerID)
		if err != nil {
			zap.L().Error("failed to lock billable repairs", zap.Error(err))
			return err
		}

		repairIDs := make([]int, len(repairs))
		byID := make(map[int]*domain.Repair, len(repairs))
		for i := range repairs {
			repairIDs[i] = repairs[i].ID
			byID[repairs[i].ID] = &repairs[i]
		}
		paidSums, err := s.paymentRepo.SumByRepairIDs(ctx, repairIDs)
		if err != nil {
			return err
		}

		open := make([]allocation.OpenItem, 0, len(repairs))
		totalDue := decimal.Zero
		for _, repair := range repairs {
			due := repair.TotalCharges.Sub(paidSums[repair.ID])
			if due.IsNegative() {
				zap.L().Error("ledger inconsistency: repair paid above total",
					zap.Int("repairID", repair.ID),
					zap.String("totalCharges", repair.TotalCharges.String()),
					zap.String("paid", paidSums[repair.ID].String()),
				)
				return allocation.ErrNegativeDue
			}
			totalDue = totalDue.Add(due)
			if repair.IsLocked || !due.IsPositive() {
				continue
			}
			open = append(open, allocation.OpenItem{RepairID: repair.ID, Due: due})
		}

		entries, err := allocation.Allocate(amount, open)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, entry := range entries {
			repair := byID[entry.RepairID]

			payment := &domain.Payment{
				RepairID:   repair.ID,
				Amount:     entry.Amount,
				Method:     method,
				ReceivedBy: actorID,
				ReceivedAt: now,
			}
			if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
				return err
			}
			created = append(created, *payment)

			newPaid := paidSums[repair.ID].Add(entry.Amount)
			locked := newPaid.GreaterThanOrEqual(repair.TotalCharges)
			if locked && !repair.IsLocked {
				staff, shop, err := s.settle(ctx, repair)
				if err != nil {
					return err
				}
				if err := s.repairRepo.UpdateSettlement(ctx, repair.ID, true, staff, shop); err != nil {
					return err
				}
				repair.IsLocked = true
				repair.StaffShare = staff
				repair.ShopShare = shop
			}

			metadata, err := json.Marshal(paymentMetadata{
				Amount:  entry.Amount,
				Method:  method,
				NewPaid: newPaid,
				Total:   repair.TotalCharges,
				Locked:  repair.IsLocked,
			})
			if err != nil {
				return err
			}
			auditEntry := &domain.AuditEntry{
				ActorID:    actorID,
				RepairID:   repair.ID,
				EntityType: "Repair",
				EntityID:   repair.ID,
				Action:     domain.ActionPaymentReceived,
				Metadata:   metadata,
				CreatedAt:  now,
			}
			if err := s.auditRepo.Append(ctx, auditEntry); err != nil {
				return err
			}
		}

		remainingDue = totalDue.Sub(amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.PaymentReceived(customer, amount, remainingDue)
	}
	return created, nil
}

// settle resolves the assigned technician's commission rate and computes
// the split. Runs exactly once per repair, at the unlocked-to-locked
// transition.
func (s *Service) settle(ctx context.Context, repair *domain.Repair) (staff, shop decimal.Decimal, err error) {
	var technician *domain.User
	if repair.TechnicianID != nil {
		technician, err = s.userRepo.GetByID(ctx, *repair.TechnicianID)
		if err != nil {
			zap.L().Error("failed to resolve technician", zap.Error(err))
			return decimal.Zero, decimal.Zero, err
		}
	}
	staff, shop = settlement.Split(repair.TotalCharges, technician)
	return staff, shop, nil
}
