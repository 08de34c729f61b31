package gateway

import (
	"fmt"
	"sync"

	"github.com/jonanatree/payment-gateway/gateway/models"
)

var ErrNotFound = fmt.Errorf("not found")

// Repository is the process-wide store of masked payment records. It is
// constructed once at startup and shared by every request's goroutine,
// so all access goes through the mutex.
type Repository struct {
	mu       sync.RWMutex
	payments map[string]*models.Payment
}

func NewRepository() *Repository {
	return &Repository{
		payments: make(map[string]*models.Payment),
	}
}

// Add inserts a payment keyed by its ID. IDs are generated upstream and
// unique by construction, so collisions are not checked.
func (r *Repository) Add(payment *models.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = payment
}

func (r *Repository) Get(id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}

	return payment, nil
}
