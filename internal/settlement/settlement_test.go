package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nirajkarki/repairdesk/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func technician(rate string) *domain.User {
	return &domain.User{
		ID:             7,
		Role:           domain.RoleTechnician,
		CommissionRate: decimal.NewNullDecimal(d(rate)),
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		want decimal.Decimal
	}{
		{name: "Technician with rate", user: technician("0.3"), want: d("0.3")},
		{name: "No technician assigned", user: nil, want: decimal.Zero},
		{
			name: "Non-technician role ignored",
			user: &domain.User{Role: domain.RoleReceptionist, CommissionRate: decimal.NewNullDecimal(d("0.5"))},
			want: decimal.Zero,
		},
		{
			name: "Technician with null rate",
			user: &domain.User{Role: domain.RoleTechnician},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(Rate(tt.user)))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		total     decimal.Decimal
		user      *domain.User
		wantStaff decimal.Decimal
		wantShop  decimal.Decimal
	}{
		{
			name:      "Thirty percent commission",
			total:     d("1000"),
			user:      technician("0.3"),
			wantStaff: d("300"),
			wantShop:  d("700"),
		},
		{
			name:      "No technician gives shop everything",
			total:     d("450.50"),
			user:      nil,
			wantStaff: d("0"),
			wantShop:  d("450.50"),
		},
		{
			name:      "Rounding stays exact",
			total:     d("100.01"),
			user:      technician("0.333"),
			wantStaff: d("33.30"),
			wantShop:  d("66.71"),
		},
		{
			name:      "Full commission",
			total:     d("250"),
			user:      technician("1"),
			wantStaff: d("250"),
			wantShop:  d("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staff, shop := Split(tt.total, tt.user)
			assert.True(t, tt.wantStaff.Equal(staff), "staff: want %s got %s", tt.wantStaff, staff)
			assert.True(t, tt.wantShop.Equal(shop), "shop: want %s got %s", tt.wantShop, shop)
			// Shares must reconstruct the total exactly.
			assert.True(t, staff.Add(shop).Equal(tt.total))
		})
	}
}
