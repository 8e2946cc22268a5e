package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agromarket/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VendorRepositoryImpl struct {
	db *sqlx.DB
}

func NewVendorRepository(db *sqlx.DB) *VendorRepositoryImpl {
	return &VendorRepositoryImpl{db: db}
}

func (r *VendorRepositoryImpl) Create(ctx context.Context, vendor *models.Vendor) error {
	query := `
		INSERT INTO vendors
		(vendor_id, user_id, store_name, description, logo_url, category_id, phone, whatsapp, email, status, created_at, updated_at)
		VALUES
		(:vendor_id, :user_id, :store_name, :description, :logo_url, :category_id, :phone, :whatsapp, :email, :status, :created_at, :updated_at)
	`

	if vendor.VendorID == "" {
		vendor.VendorID = uuid.New().String()
	}

	if vendor.Status == "" {
		vendor.Status = "pending"
	}

	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, vendor)
	if err != nil {
		return fmt.Errorf("ошибка при создании продавца: %w", err)
	}

	return nil
}

func (r *VendorRepositoryImpl) GetByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	query := `SELECT * FROM vendors WHERE vendor_id = $1`

	var vendor models.Vendor
	err := r.db.GetContext(ctx, &vendor, query, vendorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("продавец с ID %s не найден", vendorID)
		}
		return nil, fmt.Errorf("ошибка при получении продавца: %w", err)
	}

	return &vendor, nil
}

func (r *VendorRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*models.Vendor, error) {
	query := `SELECT * FROM vendors WHERE user_id = $1`

	var vendor models.Vendor
	err := r.db.GetContext(ctx, &vendor, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("продавец пользователя %s не найден", userID)
		}
		return nil, fmt.Errorf("ошибка при получении продавца: %w", err)
	}

	return &vendor, nil
}

func (r *VendorRepositoryImpl) GetApproved(ctx context.Context, categoryID string) ([]models.Vendor, error) {
	query := `SELECT * FROM vendors WHERE status = 'approved'`
	var args []interface{}

	if categoryID != "" {
		args = append(args, categoryID)
		query += " AND category_id = $1"
	}

	query += " ORDER BY created_at DESC"

	vendors := []models.Vendor{}
	err := r.db.SelectContext(ctx, &vendors, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении продавцов: %w", err)
	}

	return vendors, nil
}

func (r *VendorRepositoryImpl) GetByStatus(ctx context.Context, status string) ([]models.Vendor, error) {
	query := `SELECT * FROM vendors WHERE status = $1 ORDER BY created_at DESC`

	vendors := []models.Vendor{}
	err := r.db.SelectContext(ctx, &vendors, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении продавцов: %w", err)
	}

	return vendors, nil
}

func (r *VendorRepositoryImpl) UpdateStatus(ctx context.Context, vendorID, status string) error {
	query := `
		UPDATE vendors SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE vendor_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, vendorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса продавца: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("продавец с ID %s не найден", vendorID)
	}

	return nil
}
