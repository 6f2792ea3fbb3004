package service

import (
	authhandlers "github.com/nirajkarki/repairdesk/internal/handlers/auth"
	billinghandlers "github.com/nirajkarki/repairdesk/internal/handlers/billing"

	pkgauth "github.com/nirajkarki/repairdesk/pkg/auth"

	"github.com/nirajkarki/repairdesk/internal/repo"
	"github.com/nirajkarki/repairdesk/internal/service/authservice"
	"github.com/nirajkarki/repairdesk/internal/service/billingservice"
)

type Services struct {
	AuthService    authhandlers.Service
	BillingService billinghandlers.Service
}

func New(repo *repo.Repositories, notifier billingservice.Notifier) *Services {
	billingService := billingservice.New(
		repo.CustomerRepo,
		repo.RepairRepo,
		repo.PaymentRepo,
		repo.ChargeRepo,
		repo.UserRepo,
		repo.AuditRepo,
		repo.TXManager,
		notifier,
	)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		BillingService: billingService,
	}
}
