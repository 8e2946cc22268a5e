package service

import (
	"context"
	"errors"
	"testing"

	"agromarket/internal/models"
	"agromarket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepo) GetActive(ctx context.Context, filters repository.ProductFilters) ([]models.Product, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) GetByVendorID(ctx context.Context, vendorID string) ([]models.Product, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, productID string, patch repository.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, productID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepo) UpdateStatus(ctx context.Context, productID, status string, flagReason *string) error {
	args := m.Called(ctx, productID, status, flagReason)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type mockVendorRepo struct {
	mock.Mock
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *mockVendorRepo) GetByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *mockVendorRepo) GetByUserID(ctx context.Context, userID string) (*models.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *mockVendorRepo) GetApproved(ctx context.Context, categoryID string) ([]models.Vendor, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func (m *mockVendorRepo) GetByStatus(ctx context.Context, status string) ([]models.Vendor, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func (m *mockVendorRepo) UpdateStatus(ctx context.Context, vendorID, status string) error {
	args := m.Called(ctx, vendorID, status)
	return args.Error(0)
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("Одобренный продавец создает товар", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		vendorRepo := new(mockVendorRepo)
		svc := NewProductService(productRepo, vendorRepo)

		vendorRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&models.Vendor{VendorID: "vendor1", UserID: "user1", Status: "approved"}, nil)
		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(nil)

		product, err := svc.CreateProduct(context.Background(), "user1", CreateProductRequest{
			Name:  "Семена пшеницы",
			Price: "250.00",
		})

		require.NoError(t, err)
		assert.Equal(t, "vendor1", product.VendorID)
		assert.Equal(t, "active", product.Status)

		productRepo.AssertExpectations(t)
	})

	t.Run("Продавец со статусом pending получает отказ", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		vendorRepo := new(mockVendorRepo)
		svc := NewProductService(productRepo, vendorRepo)

		vendorRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&models.Vendor{VendorID: "vendor1", UserID: "user1", Status: "pending"}, nil)

		product, err := svc.CreateProduct(context.Background(), "user1", CreateProductRequest{
			Name:  "Семена пшеницы",
			Price: "250.00",
		})

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Contains(t, err.Error(), "только одобренный продавец")
		productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Пользователь без профиля продавца получает отказ", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		vendorRepo := new(mockVendorRepo)
		svc := NewProductService(productRepo, vendorRepo)

		vendorRepo.On("GetByUserID", mock.Anything, "user1").
			Return(nil, errors.New("продавец для пользователя user1 не найден"))

		product, err := svc.CreateProduct(context.Background(), "user1", CreateProductRequest{
			Name:  "Семена пшеницы",
			Price: "250.00",
		})

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Contains(t, err.Error(), "только одобренный продавец")
	})
}

func TestProductService_Ownership(t *testing.T) {
	product := &models.Product{ProductID: "product1", VendorID: "vendor1"}
	owner := &models.Vendor{VendorID: "vendor1", UserID: "user1", Status: "approved"}

	t.Run("Владелец обновляет свой товар", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		vendorRepo := new(mockVendorRepo)
		svc := NewProductService(productRepo, vendorRepo)

		name := "Новое название"
		patch := repository.UpdateProductRequest{Name: &name}

		productRepo.On("GetByID", mock.Anything, "product1").Return(product, nil)
		vendorRepo.On("GetByID", mock.Anything, "vendor1").Return(owner, nil)
		productRepo.On("Update", mock.Anything, "product1", patch).
			Return(&models.Product{ProductID: "product1", Name: name}, nil)

		updated, err := svc.UpdateProduct(context.Background(), "user1", "product1", patch)

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("Чужой пользователь не может удалить товар", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		vendorRepo := new(mockVendorRepo)
		svc := NewProductService(productRepo, vendorRepo)

		productRepo.On("GetByID", mock.Anything, "product1").Return(product, nil)
		vendorRepo.On("GetByID", mock.Anything, "vendor1").Return(owner, nil)

		err := svc.DeleteProduct(context.Background(), "user2", "product1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "нет прав")
		productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProductService_FlagProduct(t *testing.T) {
	productRepo := new(mockProductRepo)
	vendorRepo := new(mockVendorRepo)
	svc := NewProductService(productRepo, vendorRepo)

	reason := "Запрещённый товар"
	productRepo.On("UpdateStatus", mock.Anything, "product1", "flagged", &reason).
		Return(nil)

	err := svc.FlagProduct(context.Background(), "product1", "flagged", &reason)

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}
