// Package allocation distributes a received payment across a customer's
// open repairs, oldest first. It is a pure function of its inputs; all
// persistence happens in the billing service transaction.
package allocation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/nirajkarki/repairdesk/internal/domain"
)

var (
	ErrInvalidAmount = errors.New("positive amount and method are required")
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrOverpayment   = errors.New("payment exceeds total due across all items")
	ErrNegativeDue   = errors.New("negative due computed from ledger")
)

// OpenItem is one unsettled repair with its remaining due.
type OpenItem struct {
	RepairID int
	Due      decimal.Decimal
}

// Entry is the portion of the payment applied to one repair.
type Entry struct {
	RepairID int
	Amount   decimal.Decimal
}

// Validate checks the caller-supplied amount and method before any
// allocation work.
func Validate(amount decimal.Decimal, method string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !domain.IsValidMethod(method) {
		return ErrInvalidMethod
	}
	return nil
}

// Allocate walks items in order and applies min(remaining, due) to each
// until the amount is exhausted. The overpayment check spans the whole
// set: paying exactly the combined due is allowed, exceeding it rejects
// the entire operation. A negative due means the stored ledger is
// inconsistent and the operation is refused outright.
func Allocate(amount decimal.Decimal, items []OpenItem) ([]Entry, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	totalDue := decimal.Zero
	for _, item := range items {
		if item.Due.IsNegative() {
			return nil, ErrNegativeDue
		}
		totalDue = totalDue.Add(item.Due)
	}
	if amount.GreaterThan(totalDue) {
		return nil, ErrOverpayment
	}

	var entries []Entry
	remaining := amount
	for _, item := range items {
		if remaining.IsZero() {
			break
		}
		applied := decimal.Min(remaining, item.Due)
		if !applied.IsPositive() {
			continue
		}
		entries = append(entries, Entry{RepairID: item.RepairID, Amount: applied})
		remaining = remaining.Sub(applied)
	}
	return entries, nil
}
