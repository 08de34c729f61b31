package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jonanatree/payment-gateway/gateway/bank"
	"github.com/jonanatree/payment-gateway/gateway/models"
	"github.com/jonanatree/payment-gateway/internal/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type stubAuthorizer struct {
	result bank.Result
	err    error
	calls  int
}

func (s *stubAuthorizer) Authorize(ctx context.Context, pan string, expiryMonth, expiryYear int, currency string, amount int64, cvv string) (bank.Result, error) {
	s.calls++
	return s.result, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout))
}

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  2099,
		Currency:    "GBP",
		Amount:      1200,
		CVV:         "123",
	}
}

func TestService_ProcessPayment_Authorized(t *testing.T) {
	repo := NewRepository()
	authorizer := &stubAuthorizer{result: bank.Authorized}
	service := NewService(testLogger(), repo, authorizer)

	payment, err := service.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotEmpty(t, payment.ID)
	require.Equal(t, models.PaymentStatusAuthorized, payment.Status)
	require.Equal(t, 1111, payment.CardNumberLastFour)
	require.Equal(t, 12, payment.ExpiryMonth)
	require.Equal(t, 2099, payment.ExpiryYear)
	require.Equal(t, "GBP", payment.Currency)
	require.Equal(t, int64(1200), payment.Amount)

	stored, err := repo.Get(payment.ID)
	require.NoError(t, err)
	require.Equal(t, payment, stored)
}

func TestService_ProcessPayment_DeclinedIsPersisted(t *testing.T) {
	repo := NewRepository()
	service := NewService(testLogger(), repo, &stubAuthorizer{result: bank.Declined})

	payment, err := service.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusDeclined, payment.Status)

	stored, err := repo.Get(payment.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusDeclined, stored.Status)
}

func TestService_ProcessPayment_ValidationFailureSkipsBank(t *testing.T) {
	repo := NewRepository()
	authorizer := &stubAuthorizer{result: bank.Authorized}
	service := NewService(testLogger(), repo, authorizer)

	req := validRequest()
	req.Currency = "XXX"

	_, err := service.ProcessPayment(context.Background(), req)

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "Unsupported currency", vErr.Reason)
	require.Zero(t, authorizer.calls, "no bank call on validation failure")
	require.Empty(t, repo.payments, "no record on validation failure")
}

func TestService_ProcessPayment_BankFailureSkipsPersistence(t *testing.T) {
	for _, bankErr := range []error{bank.ErrUnavailable, bank.ErrUnexpectedResponse} {
		repo := NewRepository()
		authorizer := &stubAuthorizer{err: fmt.Errorf("authorize: %w", bankErr)}
		service := NewService(testLogger(), repo, authorizer)

		_, err := service.ProcessPayment(context.Background(), validRequest())
		require.ErrorIs(t, err, bankErr)
		require.Equal(t, 1, authorizer.calls)
		require.Empty(t, repo.payments, "no record on bank failure")
	}
}

func TestService_ProcessPayment_RecordIsMasked(t *testing.T) {
	repo := NewRepository()
	service := NewService(testLogger(), repo, &stubAuthorizer{result: bank.Authorized})

	req := validRequest()
	payment, err := service.ProcessPayment(context.Background(), req)
	require.NoError(t, err)

	encoded, err := json.Marshal(payment)
	require.NoError(t, err)

	require.False(t, strings.Contains(string(encoded), req.CardNumber), "full PAN must not survive")
	require.False(t, strings.Contains(string(encoded), `"cvv"`), "CVV must not survive")
	require.False(t, strings.Contains(string(encoded), req.CVV+`"`), "CVV value must not survive")
}

func TestService_GetPayment_NotFound(t *testing.T) {
	service := NewService(testLogger(), NewRepository(), &stubAuthorizer{})

	_, err := service.GetPayment("11111111-2222-3333-4444-555555555555")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetPayment_ReturnsRecordUnchanged(t *testing.T) {
	repo := NewRepository()
	service := NewService(testLogger(), repo, &stubAuthorizer{result: bank.Authorized})

	created, err := service.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := service.GetPayment(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}
