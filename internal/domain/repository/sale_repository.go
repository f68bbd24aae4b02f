package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// SaleFilter captures the server-side query parameters of the sales list.
// Free-text search over invoice number and customer name happens as a
// second pass in the service layer, not here.
type SaleFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentStatus *enum.PaymentStatus
	InvoiceNo     string
	CustomerID    *uuid.UUID
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns sales with page-based pagination, applying the filter
	// inside the shop scope carried by the context.
	List(ctx context.Context, filter *SaleFilter, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// ListWithCursor returns sales using cursor-based pagination.
	ListWithCursor(ctx context.Context, filter *SaleFilter, params *pagination.CursorParams) ([]entity.Sale, error)
	// ListAll returns every sale matching the filter, for report export.
	ListAll(ctx context.Context, filter *SaleFilter) ([]entity.Sale, error)
	// ListByCustomer returns a customer's full purchase history, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
	// ListByLocation returns sales recorded against a warehouse or shop.
	ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.Sale, error)
}
