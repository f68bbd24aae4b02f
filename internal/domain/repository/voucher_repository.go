package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// VoucherRepository defines the interface for voucher data operations
type VoucherRepository interface {
	// Create persists a voucher together with its ledger entries in one
	// transaction.
	Create(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)
	// Update saves voucher fields and, when entries is non-nil, replaces
	// the entry list atomically.
	Update(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns vouchers of one type, newest first.
	List(ctx context.Context, voucherType enum.VoucherType, params *pagination.PaginationParams) ([]entity.Voucher, int64, error)
}
