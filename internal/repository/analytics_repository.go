package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agromarket/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AnalyticsRepositoryImpl struct {
	db *sqlx.DB
}

// ProductViewCount is the all-time view total of one product of a vendor
type ProductViewCount struct {
	ProductID   string `json:"productId" db:"product_id"`
	ProductName string `json:"productName" db:"product_name"`
	Count       int    `json:"count" db:"count"`
}

type ContactClickCount struct {
	ContactType string `json:"contactType" db:"contact_type"`
	Count       int    `json:"count" db:"count"`
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepositoryImpl {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) CreateProductView(ctx context.Context, view *models.ProductView) error {
	query := `
		INSERT INTO product_views (view_id, product_id, user_id, ip_address, user_agent, created_at)
		VALUES (:view_id, :product_id, :user_id, :ip_address, :user_agent, :created_at)
	`

	if view.ViewID == "" {
		view.ViewID = uuid.New().String()
	}

	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, view)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("товар с ID %s не найден", view.ProductID)
		}
		return fmt.Errorf("ошибка при записи просмотра товара: %w", err)
	}

	return nil
}

func (r *AnalyticsRepositoryImpl) CreateContactClick(ctx context.Context, click *models.ContactClick) error {
	query := `
		INSERT INTO contact_clicks (click_id, vendor_id, contact_type, user_id, ip_address, user_agent, created_at)
		VALUES (:click_id, :vendor_id, :contact_type, :user_id, :ip_address, :user_agent, :created_at)
	`

	if click.ClickID == "" {
		click.ClickID = uuid.New().String()
	}

	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, click)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("продавец с ID %s не найден", click.VendorID)
		}
		return fmt.Errorf("ошибка при записи клика по контакту: %w", err)
	}

	return nil
}

func (r *AnalyticsRepositoryImpl) CountViewsByVendor(ctx context.Context, vendorID string) ([]ProductViewCount, error) {
	query := `
		SELECT p.product_id, p.name AS product_name, COUNT(v.view_id) AS count
		FROM products p
		LEFT JOIN product_views v ON v.product_id = p.product_id
		WHERE p.vendor_id = $1
		GROUP BY p.product_id, p.name
		ORDER BY count DESC
	`

	counts := []ProductViewCount{}
	err := r.db.SelectContext(ctx, &counts, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте просмотров товаров: %w", err)
	}

	return counts, nil
}

func (r *AnalyticsRepositoryImpl) CountClicksByVendor(ctx context.Context, vendorID string) ([]ContactClickCount, error) {
	query := `
		SELECT contact_type, COUNT(*) AS count
		FROM contact_clicks
		WHERE vendor_id = $1
		GROUP BY contact_type
		ORDER BY count DESC
	`

	counts := []ContactClickCount{}
	err := r.db.SelectContext(ctx, &counts, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте кликов по контактам: %w", err)
	}

	return counts, nil
}
