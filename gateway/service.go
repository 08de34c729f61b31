package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonanatree/payment-gateway/gateway/bank"
	"github.com/jonanatree/payment-gateway/gateway/models"
	"github.com/jonanatree/payment-gateway/internal/validation"
	"golang.org/x/exp/slog"
)

// Authorizer is the outbound leg to the acquiring bank.
type Authorizer interface {
	Authorize(ctx context.Context, pan string, expiryMonth, expiryYear int, currency string, amount int64, cvv string) (bank.Result, error)
}

type Service struct {
	repo   *Repository
	bank   Authorizer
	logger *slog.Logger
}

func NewService(logger *slog.Logger, repo *Repository, bank Authorizer) *Service {
	return &Service{
		repo:   repo,
		bank:   bank,
		logger: logger.With(slog.String("component", "gateway")),
	}
}

// ProcessPayment runs the end-to-end flow: validate, authorize with the
// bank, then persist a masked record. A record exists if and only if
// the bank round-trip completed; a declined payment is a successful,
// persisted outcome, not an error. On validation failure no bank call
// is made.
func (s *Service) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	err := validation.Validate(req.CardNumber, req.CVV, req.ExpiryMonth, req.ExpiryYear, req.Currency, req.Amount)
	if err != nil {
		return nil, err
	}

	result, err := s.bank.Authorize(ctx, req.CardNumber, req.ExpiryMonth, req.ExpiryYear, req.Currency, req.Amount, req.CVV)
	if err != nil {
		return nil, fmt.Errorf("authorizing payment: %w", err)
	}

	status := models.PaymentStatusDeclined
	if result == bank.Authorized {
		status = models.PaymentStatusAuthorized
	}

	// Only the last four PAN digits survive; the CVV and full PAN are
	// dropped with the request.
	payment := &models.Payment{
		ID:                 uuid.New().String(),
		Status:             status,
		CardNumberLastFour: validation.Last4(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}
	s.repo.Add(payment)

	s.logger.Debug("payment processed",
		slog.String("id", payment.ID),
		slog.String("status", string(status)),
		slog.Int("card_last_four", payment.CardNumberLastFour),
	)

	return payment, nil
}

func (s *Service) GetPayment(id string) (*models.Payment, error) {
	payment, err := s.repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("finding payment: %w", err)
	}

	return payment, nil
}
