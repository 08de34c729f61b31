package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonanatree/payment-gateway/gateway/bank"
	"github.com/jonanatree/payment-gateway/gateway/models"
	"github.com/jonanatree/payment-gateway/internal/validation"
	"golang.org/x/exp/slog"
)

// API is the HTTP API of the payment gateway.
type API struct {
	gateway *Service
	logger  *slog.Logger
}

func NewAPI(logger *slog.Logger, gateway *Service) *API {
	return &API{
		gateway: gateway,
		logger:  logger.With(slog.String("component", "api")),
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/api/payment", func(r chi.Router) {
		r.Post("/", a.processPayment)
		r.Get("/{paymentID}", a.getPayment)
	})
}

func (a *API) processPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := a.gateway.ProcessPayment(r.Context(), req)
	if err != nil {
		a.writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/api/payment/"+payment.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payment)
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	payment, err := a.gateway.GetPayment(paymentID)
	if err != nil {
		a.writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payment)
}

// writeFailure is the single place where internal error kinds become
// external statuses and messages.
func (a *API) writeFailure(w http.ResponseWriter, err error) {
	var validationErr *validation.Error

	switch {
	case errors.As(err, &validationErr):
		a.writeError(w, http.StatusBadRequest, validationErr.Reason)
	case errors.Is(err, ErrNotFound):
		a.writeError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, bank.ErrUnavailable):
		a.logger.Error("bank unavailable", "err", err)
		a.writeError(w, http.StatusBadGateway, "Bank temporarily unavailable")
	default:
		a.logger.Error("processing payment", "err", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Message: message})
}
