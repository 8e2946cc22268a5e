package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"agromarket/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

type ProductFilters struct {
	CategoryID string
	VendorID   string
	Search     string
}

type UpdateProductRequest struct {
	CategoryID  *string `json:"categoryId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"imageUrl"`
}

func NewProductRepository(db *sqlx.DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products
		(product_id, vendor_id, category_id, name, description, price, image_url, status, flag_reason, created_at, updated_at)
		VALUES
		(:product_id, :vendor_id, :category_id, :name, :description, :price, :image_url, :status, :flag_reason, :created_at, :updated_at)
	`

	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}

	if product.Status == "" {
		product.Status = "active"
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("ошибка при создании товара: %w", err)
	}

	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	query := `SELECT * FROM products WHERE product_id = $1`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("товар с ID %s не найден", productID)
		}
		return nil, fmt.Errorf("ошибка при получении товара: %w", err)
	}

	return &product, nil
}

func (r *ProductRepositoryImpl) GetActive(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	query := `SELECT * FROM products`

	conditions := []string{"status = 'active'"}
	var args []interface{}

	if filters.CategoryID != "" {
		args = append(args, filters.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}

	if filters.VendorID != "" {
		args = append(args, filters.VendorID)
		conditions = append(conditions, fmt.Sprintf("vendor_id = $%d", len(args)))
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY created_at DESC"

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении товаров: %w", err)
	}

	return products, nil
}

func (r *ProductRepositoryImpl) GetByVendorID(ctx context.Context, vendorID string) ([]models.Product, error) {
	query := `SELECT * FROM products WHERE vendor_id = $1 ORDER BY created_at DESC`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении товаров продавца: %w", err)
	}

	return products, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, productID string, patch UpdateProductRequest) (*models.Product, error) {
	var setParts []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.CategoryID != nil {
		addSet("category_id", *patch.CategoryID)
	}
	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.ImageURL != nil {
		addSet("image_url", *patch.ImageURL)
	}

	addSet("updated_at", time.Now())

	args = append(args, productID)
	query := fmt.Sprintf("UPDATE products SET %s WHERE product_id = $%d",
		strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при обновлении товара: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("товар с ID %s не найден", productID)
	}

	return r.GetByID(ctx, productID)
}

func (r *ProductRepositoryImpl) UpdateStatus(ctx context.Context, productID, status string, flagReason *string) error {
	query := `
		UPDATE products SET
			status = $1,
			flag_reason = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE product_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, flagReason, productID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса товара: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("товар с ID %s не найден", productID)
	}

	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении товара: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("товар с ID %s не найден", productID)
	}

	return nil
}
