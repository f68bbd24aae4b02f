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
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

type fakeProductReturnRepo struct {
	returns map[uuid.UUID]*entity.ProductReturn
}

func newFakeProductReturnRepo(returns ...*entity.ProductReturn) *fakeProductReturnRepo {
	r := &fakeProductReturnRepo{returns: make(map[uuid.UUID]*entity.ProductReturn)}
	for _, ret := range returns {
		copied := *ret
		r.returns[ret.ID] = &copied
	}
	return r
}

func (r *fakeProductReturnRepo) Create(ctx context.Context, ret *entity.ProductReturn) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	copied := *ret
	r.returns[ret.ID] = &copied
	return nil
}

func (r *fakeProductReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProductReturn, error) {
	ret, ok := r.returns[id]
	if !ok {
		return nil, nil
	}
	copied := *ret
	return &copied, nil
}

func (r *fakeProductReturnRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ProductReturn, int64, error) {
	out := make([]entity.ProductReturn, 0, len(r.returns))
	for _, ret := range r.returns {
		out = append(out, *ret)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductReturnRepo) ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.ProductReturn, error) {
	var out []entity.ProductReturn
	for _, ret := range r.returns {
		switch locType {
		case enum.LocationTypeWarehouse:
			if ret.WarehouseID != nil && *ret.WarehouseID == locationID {
				out = append(out, *ret)
			}
		case enum.LocationTypeShop:
			if ret.ShopID == locationID {
				out = append(out, *ret)
			}
		}
	}
	return out, nil
}

func TestCreateProductReturnRequiresExistingSale(t *testing.T) {
	svc := NewProductReturnService(newFakeProductReturnRepo(), newFakeSaleRepo())
	missing := uuid.New()

	_, err := svc.Create(context.Background(), &ProductReturnInput{
		ShopID:       uuid.New(),
		UserID:       uuid.New(),
		SaleID:       &missing,
		ProductName:  "Widget",
		Quantity:     1,
		RefundAmount: dec("100"),
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateProductReturnGeneratesReturnNo(t *testing.T) {
	svc := NewProductReturnService(newFakeProductReturnRepo(), newFakeSaleRepo())

	ret, err := svc.Create(context.Background(), &ProductReturnInput{
		ShopID:       uuid.New(),
		UserID:       uuid.New(),
		ProductName:  "Widget",
		Quantity:     2,
		RefundAmount: dec("50"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ret.ReturnNo)
}

func TestReturnsByLocationForeignShopForbidden(t *testing.T) {
	otherShop := uuid.New()
	ret := &entity.ProductReturn{ID: uuid.New(), ShopID: otherShop, ProductName: "Widget"}
	svc := NewProductReturnService(newFakeProductReturnRepo(ret), newFakeSaleRepo())

	_, err := svc.ListByLocation(context.Background(), enum.LocationTypeShop, otherShop, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}

func TestReturnsByLocationOwnShop(t *testing.T) {
	shopID := uuid.New()
	ret := &entity.ProductReturn{ID: uuid.New(), ShopID: shopID, ProductName: "Widget"}
	svc := NewProductReturnService(newFakeProductReturnRepo(ret), newFakeSaleRepo())

	returns, err := svc.ListByLocation(context.Background(), enum.LocationTypeShop, shopID, shopID)
	require.NoError(t, err)
	require.Len(t, returns, 1)
	assert.Equal(t, "Widget", returns[0].ProductName)
}

func TestReturnsByLocationWarehouse(t *testing.T) {
	shopID := uuid.New()
	warehouseID := uuid.New()
	ret := &entity.ProductReturn{ID: uuid.New(), ShopID: shopID, WarehouseID: &warehouseID, ProductName: "Widget"}
	svc := NewProductReturnService(newFakeProductReturnRepo(ret), newFakeSaleRepo())

	returns, err := svc.ListByLocation(context.Background(), enum.LocationTypeWarehouse, warehouseID, shopID)
	require.NoError(t, err)
	require.Len(t, returns, 1)
}
