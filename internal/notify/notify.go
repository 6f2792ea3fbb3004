// Package notify delivers payment receipt SMS through an external
// gateway. Delivery is fire-and-forget: a failed or dropped receipt is
// logged and never affects the payment that triggered it.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nirajkarki/repairdesk/internal/config"
	"github.com/nirajkarki/repairdesk/internal/domain"
	"github.com/nirajkarki/repairdesk/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	maxSMSLength  = 160
	queueSize     = 128
)

type Receipt struct {
	Name         string
	Phones       []string
	Amount       decimal.Decimal
	RemainingDue decimal.Decimal
}

type gatewayResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type Service struct {
	url        string
	token      string
	client     clients.HTTPClientI
	queue      chan Receipt
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.SMSGatewayAddress,
		token:      cfg.SMSAuthToken,
		client:     client,
		queue:      make(chan Receipt, queueSize),
		workerPool: NewWorkerPool(4),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notify service started")
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notify service")
			return
		case receipt := <-s.queue:
			err := s.workerPool.AddTask(ctx, func() error {
				return s.deliver(ctx, receipt)
			})
			if err != nil {
				zap.L().Warn("Failed to schedule receipt delivery", zap.Error(err))
			}
		}
	}
}

// PaymentReceived queues a receipt for the customer. Never blocks the
// calling transaction path; a full queue drops the receipt.
func (s *Service) PaymentReceived(customer *domain.Customer, amount, remainingDue decimal.Decimal) {
	if customer == nil {
		return
	}
	receipt := Receipt{
		Name:         customer.Name,
		Phones:       []string{customer.Phone, customer.Phone2},
		Amount:       amount,
		RemainingDue: remainingDue,
	}
	select {
	case s.queue <- receipt:
	default:
		zap.L().Warn("Receipt queue full, dropping SMS", zap.String("customer", customer.Name))
	}
}

func (s *Service) deliver(ctx context.Context, receipt Receipt) error {
	if s.token == "" {
		zap.L().Debug("SMS auth token not configured, skipping receipt")
		return nil
	}

	text := receiptText(receipt)

	var g errgroup.Group
	for _, phone := range receipt.Phones {
		to := NormalizePhone(phone)
		if to == "" {
			continue
		}
		g.Go(func() error {
			return s.send(ctx, to, text)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Receipt delivery failed", zap.String("customer", receipt.Name), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) send(ctx context.Context, to, text string) error {
	form := url.Values{
		"auth_token": {s.token},
		"to":         {to},
		"text":       {text},
	}

	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, err = s.client.PostForm(s.url, form)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to send SMS after %d retries: %w", maxRetries, err)
			}

			if statusCode != http.StatusOK {
				return fmt.Errorf("sms gateway returned status %d", statusCode)
			}

			var resp gatewayResponse
			if jsonErr := json.Unmarshal(respBody, &resp); jsonErr == nil && resp.Error {
				return fmt.Errorf("sms gateway rejected message: %s", resp.Message)
			}
			return nil
		}
	}
	return nil
}

func receiptText(receipt Receipt) string {
	text := fmt.Sprintf("Dear %s, we received your payment of Rs %s. Remaining due: Rs %s. Thank you.",
		receipt.Name, receipt.Amount.StringFixed(2), receipt.RemainingDue.StringFixed(2))
	if len(text) > maxSMSLength {
		text = text[:maxSMSLength]
	}
	return text
}

// NormalizePhone reduces a stored phone number to the 10-digit Nepali
// mobile form the gateway accepts, or "" if it is not a mobile number.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if len(d) == 10 && (strings.HasPrefix(d, "98") || strings.HasPrefix(d, "97")) {
		return d
	}
	// Country-prefixed forms 97798XXXXXXX / 97797XXXXXXX.
	if len(d) == 12 && (strings.HasPrefix(d, "97798") || strings.HasPrefix(d, "97797")) {
		return d[2:]
	}
	return ""
}
