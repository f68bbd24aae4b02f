package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

func newSaleFixture(customers ...*entity.Customer) (*SaleService, *fakeSaleRepo, *fakeCustomerRepo) {
	saleRepo := newFakeSaleRepo()
	customerRepo := newFakeCustomerRepo(customers...)
	return NewSaleService(saleRepo, customerRepo), saleRepo, customerRepo
}

func TestCreateSaleDerivesTotals(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.Create(context.Background(), &CreateSaleInput{
		ShopID: uuid.New(),
		UserID: uuid.New(),
		Items: []SaleItemInput{
			{ProductName: "Widget", Quantity: 3, UnitPrice: dec("100")},
			{ProductName: "Gadget", Quantity: 2, UnitPrice: dec("250.50")},
		},
		Discount:      dec("50"),
		Tax:           dec("17"),
		PaidAmount:    dec("300"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(dec("801")))
	assert.True(t, sale.GrandTotal.Equal(dec("768")))
	assert.True(t, sale.PaidAmount.Equal(dec("300")))
	assert.True(t, sale.DueAmount.Equal(dec("468")))
	assert.Equal(t, enum.PaymentStatusPartial, sale.PaymentStatus)
	assert.NotEmpty(t, sale.InvoiceNo)
}

func TestCreateSaleOverpaymentCreditsAdvance(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Ali"}
	svc, _, customerRepo := newSaleFixture(customer)

	sale, err := svc.Create(context.Background(), &CreateSaleInput{
		ShopID:     uuid.New(),
		UserID:     uuid.New(),
		CustomerID: &customer.ID,
		Items: []SaleItemInput{
			{ProductName: "Widget", Quantity: 1, UnitPrice: dec("100")},
		},
		PaidAmount:    dec("150"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, sale.PaymentStatus)
	assert.True(t, sale.DueAmount.IsZero())

	updated, _ := customerRepo.GetByID(context.Background(), customer.ID)
	assert.True(t, updated.AdvanceBalance.Equal(dec("50")))
}

func TestCreateSaleRejectsDiscountOverTotal(t *testing.T) {
	svc, _, _ := newSaleFixture()

	_, err := svc.Create(context.Background(), &CreateSaleInput{
		ShopID: uuid.New(),
		UserID: uuid.New(),
		Items: []SaleItemInput{
			{ProductName: "Widget", Quantity: 1, UnitPrice: dec("100")},
		},
		Discount:      dec("200"),
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "discount", appErr.Errors[0].Field)
}

func TestListByLocationOwnShop(t *testing.T) {
	shopID := uuid.New()
	sale := &entity.Sale{ID: uuid.New(), ShopID: shopID, InvoiceNo: "INV-001"}
	saleRepo := newFakeSaleRepo(sale)
	svc := NewSaleService(saleRepo, newFakeCustomerRepo())

	sales, err := svc.ListByLocation(context.Background(), enum.LocationTypeShop, shopID, shopID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "INV-001", sales[0].InvoiceNo)
}

func TestListByLocationForeignShopForbidden(t *testing.T) {
	otherShop := uuid.New()
	sale := &entity.Sale{ID: uuid.New(), ShopID: otherShop, InvoiceNo: "INV-002"}
	saleRepo := newFakeSaleRepo(sale)
	svc := NewSaleService(saleRepo, newFakeCustomerRepo())

	_, err := svc.ListByLocation(context.Background(), enum.LocationTypeShop, otherShop, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}

func TestListByLocationWarehouse(t *testing.T) {
	shopID := uuid.New()
	warehouseID := uuid.New()
	sale := &entity.Sale{ID: uuid.New(), ShopID: shopID, WarehouseID: &warehouseID, InvoiceNo: "INV-003"}
	saleRepo := newFakeSaleRepo(sale)
	svc := NewSaleService(saleRepo, newFakeCustomerRepo())

	sales, err := svc.ListByLocation(context.Background(), enum.LocationTypeWarehouse, warehouseID, shopID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestListByLocationUnknownType(t *testing.T) {
	svc, _, _ := newSaleFixture()

	_, err := svc.ListByLocation(context.Background(), enum.LocationType("store"), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown location type")
}

func TestCreateSaleValidation(t *testing.T) {
	svc, _, _ := newSaleFixture()

	tests := []struct {
		name  string
		input *CreateSaleInput
		field string
	}{
		{
			"no items",
			&CreateSaleInput{PaymentMethod: enum.PaymentMethodCash},
			"items",
		},
		{
			"zero quantity",
			&CreateSaleInput{
				Items:         []SaleItemInput{{ProductName: "W", Quantity: 0, UnitPrice: dec("10")}},
				PaymentMethod: enum.PaymentMethodCash,
			},
			"items",
		},
		{
			"negative unit price",
			&CreateSaleInput{
				Items:         []SaleItemInput{{ProductName: "W", Quantity: 1, UnitPrice: dec("-10")}},
				PaymentMethod: enum.PaymentMethodCash,
			},
			"items",
		},
		{
			"negative paid",
			&CreateSaleInput{
				Items:         []SaleItemInput{{ProductName: "W", Quantity: 1, UnitPrice: dec("10")}},
				PaidAmount:    dec("-1"),
				PaymentMethod: enum.PaymentMethodCash,
			},
			"paid_amount",
		},
		{
			"bad method",
			&CreateSaleInput{
				Items:         []SaleItemInput{{ProductName: "W", Quantity: 1, UnitPrice: dec("10")}},
				PaymentMethod: enum.PaymentMethod("barter"),
			},
			"payment_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			require.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			fields := make([]string, 0, len(appErr.Errors))
			for _, fe := range appErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}
