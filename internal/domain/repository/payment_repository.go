package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// ListBySale returns payments recorded against a sale, oldest first.
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error)
	// ListByCustomer returns payments recorded for a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error)
}
