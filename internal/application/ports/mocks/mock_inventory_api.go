package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.Envelope[dto.LoginData], error) {
	args := m.Called(ctx, in)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[dto.LoginData]), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockInventoryAPI struct {
	mock.Mock
}

func (m *MockInventoryAPI) ListProducts(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[[]entity.Product]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) GetProduct(ctx context.Context, id int64) (*dto.Envelope[entity.Product], error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[entity.Product]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) CreateProduct(ctx context.Context, p entity.Product) (*dto.Envelope[entity.Product], error) {
	args := m.Called(ctx, p)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[entity.Product]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) UpdateProduct(ctx context.Context, id int64, p entity.Product) (*dto.Envelope[entity.Product], error) {
	args := m.Called(ctx, id, p)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[entity.Product]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) DeleteProduct(ctx context.Context, id int64) (*dto.Envelope[struct{}], error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[struct{}]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) ListCategories(ctx context.Context) (*dto.Envelope[[]entity.Category], error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[[]entity.Category]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryAPI) CreateCategory(ctx context.Context, c entity.Category) (*dto.Envelope[entity.Category], error) {
	args := m.Called(ctx, c)
	if res := args.Get(0); res != nil {
		return res.(*dto.Envelope[entity.Category]), args.Error(1)
	}
	return nil, args.Error(1)
}
