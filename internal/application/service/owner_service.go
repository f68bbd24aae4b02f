package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// OwnerService handles owner contacts and partnership accounts
type OwnerService struct {
	ownerRepo       repository.OwnerRepository
	partnershipRepo repository.PartnershipAccountRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(ownerRepo repository.OwnerRepository, partnershipRepo repository.PartnershipAccountRepository) *OwnerService {
	return &OwnerService{
		ownerRepo:       ownerRepo,
		partnershipRepo: partnershipRepo,
	}
}

// OwnerInput represents an owner submission
type OwnerInput struct {
	ShopID  uuid.UUID
	Name    string
	Phone   *string
	Email   *string
	CNIC    *string
	Address *string
}

func (in *OwnerInput) validate() error {
	if in.Name == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	return nil
}

// CreateOwner records a new owner
func (s *OwnerService) CreateOwner(ctx context.Context, input *OwnerInput) (*entity.Owner, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	owner := &entity.Owner{
		ShopID:  input.ShopID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		CNIC:    input.CNIC,
		Address: input.Address,
	}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// GetOwner returns an owner
func (s *OwnerService) GetOwner(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}
	return owner, nil
}

// ListOwners returns a page of owners matching the search term
func (s *OwnerService) ListOwners(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Owner], error) {
	owners, total, err := s.ownerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(owners, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateOwner rewrites an owner's contact fields
func (s *OwnerService) UpdateOwner(ctx context.Context, id uuid.UUID, input *OwnerInput) (*entity.Owner, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}

	owner.Name = input.Name
	owner.Phone = input.Phone
	owner.Email = input.Email
	owner.CNIC = input.CNIC
	owner.Address = input.Address

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// DeleteOwner removes an owner
func (s *OwnerService) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if owner == nil {
		return apperror.NewNotFoundError("Owner")
	}
	return s.ownerRepo.Delete(ctx, id)
}

// PartnershipAccountInput represents a partnership account submission
type PartnershipAccountInput struct {
	ShopID         uuid.UUID
	Name           string
	PartnerName    string
	Phone          *string
	Email          *string
	Address        *string
	SharePercent   decimal.Decimal
	OpeningBalance decimal.Decimal
}

func (in *PartnershipAccountInput) validate() error {
	var fieldErrors []apperror.FieldError
	if in.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if in.PartnerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "partner_name", Message: "partner name is required"})
	}
	hundred := decimal.NewFromInt(100)
	if in.SharePercent.IsNegative() || in.SharePercent.GreaterThan(hundred) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "share_percent", Message: "share must be between 0 and 100"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreatePartnershipAccount records a new partnership account
func (s *OwnerService) CreatePartnershipAccount(ctx context.Context, input *PartnershipAccountInput) (*entity.PartnershipAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	account := &entity.PartnershipAccount{
		ShopID:         input.ShopID,
		Name:           input.Name,
		PartnerName:    input.PartnerName,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		SharePercent:   input.SharePercent,
		OpeningBalance: input.OpeningBalance,
	}
	if err := s.partnershipRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetPartnershipAccount returns a partnership account
func (s *OwnerService) GetPartnershipAccount(ctx context.Context, id uuid.UUID) (*entity.PartnershipAccount, error) {
	account, err := s.partnershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Partnership account")
	}
	return account, nil
}

// ListPartnershipAccounts returns a page of partnership accounts
func (s *OwnerService) ListPartnershipAccounts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.PartnershipAccount], error) {
	accounts, total, err := s.partnershipRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(accounts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdatePartnershipAccount rewrites a partnership account
func (s *OwnerService) UpdatePartnershipAccount(ctx context.Context, id uuid.UUID, input *PartnershipAccountInput) (*entity.PartnershipAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	account, err := s.partnershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Partnership account")
	}

	account.Name = input.Name
	account.PartnerName = input.PartnerName
	account.Phone = input.Phone
	account.Email = input.Email
	account.Address = input.Address
	account.SharePercent = input.SharePercent
	account.OpeningBalance = input.OpeningBalance

	if err := s.partnershipRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeletePartnershipAccount removes a partnership account
func (s *OwnerService) DeletePartnershipAccount(ctx context.Context, id uuid.UUID) error {
	account, err := s.partnershipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NewNotFoundError("Partnership account")
	}
	return s.partnershipRepo.Delete(ctx, id)
}
