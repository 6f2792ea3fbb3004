package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nirajkarki/repairdesk/docs"
	authhandlers "github.com/nirajkarki/repairdesk/internal/handlers/auth"
	billinghandlers "github.com/nirajkarki/repairdesk/internal/handlers/billing"
	"github.com/nirajkarki/repairdesk/internal/service"
	"github.com/nirajkarki/repairdesk/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	ApplyPayment(w http.ResponseWriter, r *http.Request)
	GetBilling(w http.ResponseWriter, r *http.Request)
	GetRepairByTicket(w http.ResponseWriter, r *http.Request)
	GetAuditTrail(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BillingHandler BillingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BillingHandler: billinghandlers.New(s.BillingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/customers/{id}", func(r chi.Router) {
				r.Post("/payments", h.BillingHandler.ApplyPayment)
				r.Get("/billing", h.BillingHandler.GetBilling)
			})
			r.Get("/tickets/{number}", h.BillingHandler.GetRepairByTicket)
			r.Get("/repairs/{id}/audit", h.BillingHandler.GetAuditTrail)
		})
	})

	return r
}
