package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// OwnerRepository defines the interface for owner data operations
type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.Owner) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Owner, int64, error)
}

// PartnershipAccountRepository defines the interface for partnership account data operations
type PartnershipAccountRepository interface {
	Create(ctx context.Context, account *entity.PartnershipAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PartnershipAccount, error)
	Update(ctx context.Context, account *entity.PartnershipAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PartnershipAccount, int64, error)
}
