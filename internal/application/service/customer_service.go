package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents a customer submission
type CustomerInput struct {
	ShopID  uuid.UUID
	Name    string
	Phone   *string
	Email   *string
	Address *string
}

func (in *CustomerInput) validate() error {
	if in.Name == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}
	return nil
}

// Create records a new customer
func (s *CustomerService) Create(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ShopID:  input.ShopID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID returns a customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// List returns a page of customers matching the search term
func (s *CustomerService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListWithCursor returns customers using cursor pagination
func (s *CustomerService) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	cursor, trimmed := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	return pagination.NewCursorPaginatedResult(trimmed, cursor), nil
}

// Update rewrites a customer's contact fields
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
