package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type ApplyPaymentRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"600"`
	Method string          `json:"method" example:"CASH"`
}

type CreatedPaymentDTO struct {
	PaymentID int             `json:"paymentId" example:"12"`
	RepairID  int             `json:"repairId" example:"3"`
	Amount    decimal.Decimal `json:"amount" example:"500"`
}

type ApplyPaymentResponseDTO struct {
	CreatedPayments []CreatedPaymentDTO `json:"createdPayments"`
}

type CustomerDTO struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Ram Shrestha"`
	Phone   string `json:"phone" example:"9841000000"`
	Phone2  string `json:"phone2,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type ChargeDTO struct {
	ID          int             `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type PaymentDTO struct {
	ID         int             `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	ReceivedBy int             `json:"receivedBy"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

type BillingItemDTO struct {
	RepairID     int             `json:"repairId"`
	TicketNumber string          `json:"ticketNumber"`
	Device       string          `json:"device"`
	Status       string          `json:"status"`
	IsLocked     bool            `json:"isLocked"`
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	Due          decimal.Decimal `json:"due"`
	Charges      []ChargeDTO     `json:"charges"`
	Payments     []PaymentDTO    `json:"payments"`
}

type BillingResponseDTO struct {
	Customer      CustomerDTO      `json:"customer"`
	Items         []BillingItemDTO `json:"items"`
	CombinedTotal decimal.Decimal  `json:"combinedTotal"`
	CombinedPaid  decimal.Decimal  `json:"combinedPaid"`
	CombinedDue   decimal.Decimal  `json:"combinedDue"`
}

type RepairDTO struct {
	ID           int             `json:"id"`
	CustomerID   int             `json:"customerId"`
	TicketNumber string          `json:"ticketNumber"`
	Device       string          `json:"device"`
	Status       string          `json:"status"`
	TotalCharges decimal.Decimal `json:"totalCharges"`
	IsLocked     bool            `json:"isLocked"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type AuditEntryDTO struct {
	ID         int             `json:"id"`
	ActorID    int             `json:"actorId"`
	EntityType string          `json:"entityType"`
	EntityID   int             `json:"entityId"`
	Action     string          `json:"action"`
	Metadata   json.RawMessage `json:"metadata"`
	CreatedAt  time.Time       `json:"createdAt"`
}
