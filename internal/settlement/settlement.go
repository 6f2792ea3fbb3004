// Package settlement computes the commission split applied when a repair
// becomes fully paid.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/nirajkarki/repairdesk/internal/domain"
)

// Rate resolves the commission fraction owed to the assigned technician.
// Only a user with the technician role and a stored rate earns a share;
// any other assignment (nil user, other role, null rate) yields zero.
func Rate(technician *domain.User) decimal.Decimal {
	if technician == nil {
		return decimal.Zero
	}
	if technician.Role != domain.RoleTechnician || !technician.CommissionRate.Valid {
		return decimal.Zero
	}
	return technician.CommissionRate.Decimal
}

// Split divides totalCharges between the technician and the shop. The
// staff share is rounded to the smallest currency unit and the shop share
// is always the exact remainder, so the two always sum to totalCharges.
func Split(totalCharges decimal.Decimal, technician *domain.User) (staff, shop decimal.Decimal) {
	staff = totalCharges.Mul(Rate(technician)).Round(2)
	shop = totalCharges.Sub(staff)
	return staff, shop
}
