package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nirajkarki/repairdesk/internal/allocation"
	"github.com/nirajkarki/repairdesk/internal/domain"
	"github.com/nirajkarki/repairdesk/internal/dto"
	"github.com/nirajkarki/repairdesk/internal/pg"
	"github.com/nirajkarki/repairdesk/internal/service/billingservice"
	"github.com/nirajkarki/repairdesk/pkg/auth"
	"github.com/nirajkarki/repairdesk/pkg/utils"
	"github.com/nirajkarki/repairdesk/pkg/validate"
)

type Service interface {
	GetCustomerBilling(ctx context.Context, customerID int) (*billingservice.BillingSummary, error)
	GetRepairByTicket(ctx context.Context, ticketNumber string) (*domain.Repair, error)
	GetAuditTrail(ctx context.Context, repairID int) ([]domain.AuditEntry, error)
	ApplyPayment(ctx context.Context, customerID int, amount decimal.Decimal, method string, actorID int) ([]domain.Payment, error)
}

type BillingHandler struct {
	billingService Service
}

func New(billingService Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// ApplyPayment godoc
//
//	@Summary		Apply a customer payment
//	@Description	Allocate a payment across the customer's unsettled repairs oldest first. A repair whose balance reaches its total is settled and locked.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Customer ID"
//	@Param			request	body		dto.ApplyPaymentRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.ApplyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Failure		503		{object}	utils.Response	"Transient database conflict"
//	@Router			/api/customers/{id}/payments [post]
func (h *BillingHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var req dto.ApplyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payments, err := h.billingService.ApplyPayment(r.Context(), customerID, req.Amount, req.Method, actorID)
	if err != nil {
		switch {
		case errors.Is(err, billingservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
		case errors.Is(err, allocation.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, "Positive amount and method are required")
		case errors.Is(err, allocation.ErrInvalidMethod):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment method")
		case errors.Is(err, allocation.ErrOverpayment):
			utils.RespondWithError(w, http.StatusBadRequest, "Payment exceeds total due across all items")
		case pg.IsRetryable(err):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Temporary conflict, retry the payment")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	created := make([]dto.CreatedPaymentDTO, len(payments))
	for i, p := range payments {
		created[i] = dto.CreatedPaymentDTO{
			PaymentID: p.ID,
			RepairID:  p.RepairID,
			Amount:    p.Amount,
		}
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ApplyPaymentResponseDTO{
		CreatedPayments: created,
	})
}

// GetBilling godoc
//
//	@Summary		Get customer billing summary
//	@Description	List the customer's billable repairs oldest first with per-repair charges, payments and combined totals.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Customer ID"
//	@Success		200	{object}	dto.BillingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/billing [get]
func (h *BillingHandler) GetBilling(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	summary, err := h.billingService.GetCustomerBilling(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, billingservice.ErrCustomerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toBillingResponse(summary))
}

// GetRepairByTicket godoc
//
//	@Summary		Look up a repair by ticket number
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string	true	"Ticket number"
//	@Success		200		{object}	dto.RepairDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Repair not found"
//	@Failure		422		{object}	utils.Response	"Invalid ticket number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets/{number} [get]
func (h *BillingHandler) GetRepairByTicket(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if !validate.IsTicketNumber(number) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid ticket number")
		return
	}

	repair, err := h.billingService.GetRepairByTicket(r.Context(), number)
	if err != nil {
		if errors.Is(err, billingservice.ErrRepairNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Repair not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RepairDTO{
		ID:           repair.ID,
		CustomerID:   repair.CustomerID,
		TicketNumber: repair.TicketNumber,
		Device:       repair.Device,
		Status:       repair.Status,
		TotalCharges: repair.TotalCharges,
		IsLocked:     repair.IsLocked,
		CreatedAt:    repair.CreatedAt,
	})
}

// GetAuditTrail godoc
//
//	@Summary		Get repair audit trail
//	@Description	List audit entries for a repair in chronological order.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Repair ID"
//	@Success		200	{array}		dto.AuditEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/repairs/{id}/audit [get]
func (h *BillingHandler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	repairID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid repair id")
		return
	}

	entries, err := h.billingService.GetAuditTrail(r.Context(), repairID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AuditEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.AuditEntryDTO{
			ID:         e.ID,
			ActorID:    e.ActorID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Metadata:   json.RawMessage(e.Metadata),
			CreatedAt:  e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toBillingResponse(summary *billingservice.BillingSummary) dto.BillingResponseDTO {
	items := make([]dto.BillingItemDTO, len(summary.Items))
	for i, item := range summary.Items {
		charges := make([]dto.ChargeDTO, len(item.Charges))
		for j, c := range item.Charges {
			charges[j] = dto.ChargeDTO{
				ID:          c.ID,
				Amount:      c.Amount,
				Description: c.Description,
				CreatedAt:   c.CreatedAt,
			}
		}
		payments := make([]dto.PaymentDTO, len(item.Payments))
		for j, p := range item.Payments {
			payments[j] = dto.PaymentDTO{
				ID:         p.ID,
				Amount:     p.Amount,
				Method:     p.Method,
				ReceivedBy: p.ReceivedBy,
				ReceivedAt: p.ReceivedAt,
			}
		}
		items[i] = dto.BillingItemDTO{
			RepairID:     item.Repair.ID,
			TicketNumber: item.Repair.TicketNumber,
			Device:       item.Repair.Device,
			Status:       item.Repair.Status,
			IsLocked:     item.Repair.IsLocked,
			Total:        item.Total,
			Paid:         item.Paid,
			Due:          item.Due,
			Charges:      charges,
			Payments:     payments,
		}
	}
	customer := summary.Customer
	return dto.BillingResponseDTO{
		Customer: dto.CustomerDTO{
			ID:      customer.ID,
			Name:    customer.Name,
			Phone:   customer.Phone,
			Phone2:  customer.Phone2,
			Email:   customer.Email,
			Address: customer.Address,
		},
		Items:         items,
		CombinedTotal: summary.CombinedTotal,
		CombinedPaid:  summary.CombinedPaid,
		CombinedDue:   summary.CombinedDue,
	}
}
