package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
	RoleTechnician   = "TECHNICIAN"
)

const (
	StatusReceived     = "RECEIVED"
	StatusInProgress   = "IN_PROGRESS"
	StatusRepaired     = "REPAIRED"
	StatusUnrepairable = "UNREPAIRABLE"
	StatusDelivered    = "DELIVERED"
)

// BillableStatuses are the repair states eligible for payment.
var BillableStatuses = []string{StatusRepaired, StatusUnrepairable}

func IsBillableStatus(status string) bool {
	for _, s := range BillableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

const (
	MethodCash         = "CASH"
	MethodCard         = "CARD"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodOther        = "OTHER"
)

func IsValidMethod(method string) bool {
	switch method {
	case MethodCash, MethodCard, MethodBankTransfer, MethodOther:
		return true
	}
	return false
}

const ActionPaymentReceived = "PAYMENT_RECEIVED"

type User struct {
	ID             int                 `db:"id"`
	Login          string              `db:"login"`
	PasswordHash   string              `db:"password_hash"`
	FullName       string              `db:"full_name"`
	Role           string              `db:"role"`
	CommissionRate decimal.NullDecimal `db:"commission_rate"`
	CreatedAt      time.Time           `db:"created_at"`
}

type Customer struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Phone2    string    `db:"phone2"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

type Repair struct {
	ID           int             `db:"id"`
	CustomerID   int             `db:"customer_id"`
	TicketNumber string          `db:"ticket_number"`
	Device       string          `db:"device"`
	Status       string          `db:"status"`
	TotalCharges decimal.Decimal `db:"total_charges"`
	IsLocked     bool            `db:"is_locked"`
	StaffShare   decimal.Decimal `db:"staff_share"`
	ShopShare    decimal.Decimal `db:"shop_share"`
	TechnicianID *int            `db:"technician_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Charge struct {
	ID          int             `db:"id"`
	RepairID    int             `db:"repair_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Payment is append-only: a repair's due is always derived as
// total_charges minus the sum of its payments.
type Payment struct {
	ID         int             `db:"id"`
	RepairID   int             `db:"repair_id"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	ReceivedBy int             `db:"received_by"`
	ReceivedAt time.Time       `db:"received_at"`
}

type AuditEntry struct {
	ID         int       `db:"id"`
	ActorID    int       `db:"actor_id"`
	RepairID   int       `db:"repair_id"`
	EntityType string    `db:"entity_type"`
	EntityID   int       `db:"entity_id"`
	Action     string    `db:"action"`
	Metadata   []byte    `db:"metadata"`
	CreatedAt  time.Time `db:"created_at"`
}
