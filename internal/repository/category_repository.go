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

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (category_id, name, slug, created_at)
		VALUES (:category_id, :name, :slug, :created_at)
	`

	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("категория %s уже существует", category.Name)
		}
		return fmt.Errorf("ошибка при создании категории: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `SELECT * FROM categories WHERE category_id = $1`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("категория с ID %s не найдена", categoryID)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT * FROM categories ORDER BY name`

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}

	return categories, nil
}
