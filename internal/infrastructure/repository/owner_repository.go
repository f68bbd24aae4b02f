package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
	"gorm.io/gorm"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) domainRepo.OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var owner entity.Owner
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		First(&owner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &owner, err
}

func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Owner{}, "id = ?", id).Error
}

func (r *ownerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Owner, int64, error) {
	var owners []entity.Owner
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Owner{}).Scopes(ShopScope(ctx))
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR cnic ILIKE ?", term, term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&owners).Error

	return owners, total, err
}

type partnershipAccountRepository struct {
	db *gorm.DB
}

// NewPartnershipAccountRepository creates a new partnership account repository
func NewPartnershipAccountRepository(db *gorm.DB) domainRepo.PartnershipAccountRepository {
	return &partnershipAccountRepository{db: db}
}

func (r *partnershipAccountRepository) Create(ctx context.Context, account *entity.PartnershipAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *partnershipAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PartnershipAccount, error) {
	var account entity.PartnershipAccount
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *partnershipAccountRepository) Update(ctx context.Context, account *entity.PartnershipAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *partnershipAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PartnershipAccount{}, "id = ?", id).Error
}

func (r *partnershipAccountRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PartnershipAccount, int64, error) {
	var accounts []entity.PartnershipAccount
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PartnershipAccount{}).Scopes(ShopScope(ctx))
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR partner_name ILIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&accounts).Error

	return accounts, total, err
}
