package service

import (
	"context"
	"fmt"

	"agromarket/internal/models"
	"agromarket/internal/repository"
)

type ProductService interface {
	CreateProduct(ctx context.Context, userID string, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, userID, productID string, patch repository.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, userID, productID string) error
	FlagProduct(ctx context.Context, productID, status string, flagReason *string) error
}

type CreateProductRequest struct {
	CategoryID  *string
	Name        string
	Description *string
	Price       string
	ImageURL    *string
}

type productService struct {
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
}

func NewProductService(productRepo repository.ProductRepository, vendorRepo repository.VendorRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

// CreateProduct allows only a user whose vendor profile is approved
func (s *productService) CreateProduct(ctx context.Context, userID string, req CreateProductRequest) (*models.Product, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil || vendor.Status != "approved" {
		return nil, fmt.Errorf("создавать товары может только одобренный продавец")
	}

	product := &models.Product{
		VendorID:    vendor.VendorID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Status:      "active",
	}

	err = s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, userID, productID string, patch repository.UpdateProductRequest) (*models.Product, error) {
	err := s.checkOwnership(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	return s.productRepo.Update(ctx, productID, patch)
}

func (s *productService) DeleteProduct(ctx context.Context, userID, productID string) error {
	err := s.checkOwnership(ctx, userID, productID)
	if err != nil {
		return err
	}

	return s.productRepo.Delete(ctx, productID)
}

// FlagProduct is reserved for admins, the role check lives in the handler
func (s *productService) FlagProduct(ctx context.Context, productID, status string, flagReason *string) error {
	return s.productRepo.UpdateStatus(ctx, productID, status, flagReason)
}

// checkOwnership verifies that the product belongs to the vendor linked to this user
func (s *productService) checkOwnership(ctx context.Context, userID, productID string) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, product.VendorID)
	if err != nil {
		return err
	}

	if vendor.UserID != userID {
		return fmt.Errorf("нет прав на изменение этого товара")
	}

	return nil
}
