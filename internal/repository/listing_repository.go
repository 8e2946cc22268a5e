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

type ListingRepositoryImpl struct {
	db *sqlx.DB
}

// ListingFilters compose conjunctively, the search term matches any text field
type ListingFilters struct {
	Role     string
	CropType string
	Search   string
}

type UpdateListingRequest struct {
	Role         *string `json:"role"`
	VendorName   *string `json:"vendorName"`
	ItemName     *string `json:"itemName"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	CropType     *string `json:"cropType"`
	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail"`
	ImageURL     *string `json:"imageUrl"`
	PasswordHash *string `json:"-"`
}

func NewListingRepository(db *sqlx.DB) *ListingRepositoryImpl {
	return &ListingRepositoryImpl{db: db}
}

func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *models.Listing) error {
	query := `
		INSERT INTO listings
		(listing_id, role, vendor_name, item_name, description, price, crop_type, contact_phone, contact_email, image_url, password_hash, created_at, updated_at)
		VALUES
		(:listing_id, :role, :vendor_name, :item_name, :description, :price, :crop_type, :contact_phone, :contact_email, :image_url, :password_hash, :created_at, :updated_at)
	`

	if listing.ListingID == "" {
		listing.ListingID = uuid.New().String()
	}

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		return fmt.Errorf("ошибка при создании объявления: %w", err)
	}

	return nil
}

func (r *ListingRepositoryImpl) GetByID(ctx context.Context, listingID string) (*models.Listing, error) {
	query := `SELECT * FROM listings WHERE listing_id = $1`

	var listing models.Listing
	err := r.db.GetContext(ctx, &listing, query, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("объявление с ID %s не найдено", listingID)
		}
		return nil, fmt.Errorf("ошибка при получении объявления: %w", err)
	}

	return &listing, nil
}

func (r *ListingRepositoryImpl) GetAll(ctx context.Context, filters ListingFilters) ([]models.Listing, error) {
	query := `SELECT * FROM listings`

	var conditions []string
	var args []interface{}

	if filters.Role != "" {
		args = append(args, filters.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}

	if filters.CropType != "" {
		args = append(args, filters.CropType)
		conditions = append(conditions, fmt.Sprintf("crop_type = $%d", len(args)))
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(item_name ILIKE $%d OR description ILIKE $%d OR vendor_name ILIKE $%d)", n, n, n))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	listings := []models.Listing{}
	err := r.db.SelectContext(ctx, &listings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении объявлений: %w", err)
	}

	return listings, nil
}

func (r *ListingRepositoryImpl) Update(ctx context.Context, listingID string, patch UpdateListingRequest) (*models.Listing, error) {
	var setParts []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Role != nil {
		addSet("role", *patch.Role)
	}
	if patch.VendorName != nil {
		addSet("vendor_name", *patch.VendorName)
	}
	if patch.ItemName != nil {
		addSet("item_name", *patch.ItemName)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.CropType != nil {
		addSet("crop_type", *patch.CropType)
	}
	if patch.ContactPhone != nil {
		addSet("contact_phone", *patch.ContactPhone)
	}
	if patch.ContactEmail != nil {
		addSet("contact_email", *patch.ContactEmail)
	}
	if patch.ImageURL != nil {
		addSet("image_url", *patch.ImageURL)
	}
	if patch.PasswordHash != nil {
		addSet("password_hash", *patch.PasswordHash)
	}

	// updated_at is restamped even on an empty patch
	addSet("updated_at", time.Now())

	args = append(args, listingID)
	query := fmt.Sprintf("UPDATE listings SET %s WHERE listing_id = $%d",
		strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при обновлении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("объявление с ID %s не найдено", listingID)
	}

	return r.GetByID(ctx, listingID)
}

func (r *ListingRepositoryImpl) Delete(ctx context.Context, listingID string) error {
	query := `DELETE FROM listings WHERE listing_id = $1`

	result, err := r.db.ExecContext(ctx, query, listingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("объявление с ID %s не найдено", listingID)
	}

	return nil
}
