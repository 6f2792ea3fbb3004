package repo

import (
	"github.com/nirajkarki/repairdesk/internal/pg"
	auditrepo "github.com/nirajkarki/repairdesk/internal/repo/audit-repo"
	chargerepo "github.com/nirajkarki/repairdesk/internal/repo/charge-repo"
	customerrepo "github.com/nirajkarki/repairdesk/internal/repo/customer-repo"
	paymentrepo "github.com/nirajkarki/repairdesk/internal/repo/payment-repo"
	repairrepo "github.com/nirajkarki/repairdesk/internal/repo/repair-repo"
	userrepo "github.com/nirajkarki/repairdesk/internal/repo/user-repo"
)

type Repositories struct {
	CustomerRepo *customerrepo.Repository
	RepairRepo   *repairrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	ChargeRepo   *chargerepo.Repository
	UserRepo     *userrepo.Repository
	AuditRepo    *auditrepo.Repository
	TXManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		CustomerRepo: customerrepo.New(conn),
		RepairRepo:   repairrepo.New(conn, txManager),
		PaymentRepo:  paymentrepo.New(conn),
		ChargeRepo:   chargerepo.New(conn),
		UserRepo:     userrepo.New(conn),
		AuditRepo:    auditrepo.New(conn),
		TXManager:    txManager,
	}
}
