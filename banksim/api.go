package banksim

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// API simulates the acquiring bank for local runs and tests. The
// decision is keyed on the PAN's last digit: odd digits authorize,
// even digits decline, and a trailing zero simulates an outage.
type API struct {
	logger *slog.Logger
}

func NewAPI(logger *slog.Logger) *API {
	return &API{
		logger: logger.With(slog.String("app", "bank-simulator")),
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payments", a.authorize)
}

type authorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type authorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	req := authorizationRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CardNumber == "" || !strings.Contains(req.ExpiryDate, "/") {
		http.Error(w, "missing card details", http.StatusBadRequest)
		return
	}

	last := req.CardNumber[len(req.CardNumber)-1]
	if last == '0' {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := authorizationResponse{
		Authorized: (last-'0')%2 == 1,
	}
	if resp.Authorized {
		resp.AuthorizationCode = uuid.New().String()
	}

	a.logger.Debug("authorization simulated", slog.Bool("authorized", resp.Authorized))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
