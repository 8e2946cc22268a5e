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
	"github.com/lib/pq"
)

type CropInfoRepositoryImpl struct {
	db *sqlx.DB
}

type UpdateCropInfoRequest struct {
	Title    *string   `json:"title"`
	Body     *string   `json:"body"`
	MediaURL *string   `json:"mediaUrl"`
	Tags     *[]string `json:"tags"`
}

func NewCropInfoRepository(db *sqlx.DB) *CropInfoRepositoryImpl {
	return &CropInfoRepositoryImpl{db: db}
}

func (r *CropInfoRepositoryImpl) Create(ctx context.Context, info *models.CropInfo) error {
	query := `
		INSERT INTO crop_info (crop_info_id, title, body, media_url, tags, created_at)
		VALUES (:crop_info_id, :title, :body, :media_url, :tags, :created_at)
	`

	if info.CropInfoID == "" {
		info.CropInfoID = uuid.New().String()
	}

	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, info)
	if err != nil {
		return fmt.Errorf("ошибка при создании статьи: %w", err)
	}

	return nil
}

func (r *CropInfoRepositoryImpl) GetByID(ctx context.Context, cropInfoID string) (*models.CropInfo, error) {
	query := `SELECT * FROM crop_info WHERE crop_info_id = $1`

	var info models.CropInfo
	err := r.db.GetContext(ctx, &info, query, cropInfoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("статья с ID %s не найдена", cropInfoID)
		}
		return nil, fmt.Errorf("ошибка при получении статьи: %w", err)
	}

	return &info, nil
}

func (r *CropInfoRepositoryImpl) GetAll(ctx context.Context) ([]models.CropInfo, error) {
	query := `SELECT * FROM crop_info ORDER BY created_at DESC`

	infos := []models.CropInfo{}
	err := r.db.SelectContext(ctx, &infos, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении статей: %w", err)
	}

	return infos, nil
}

func (r *CropInfoRepositoryImpl) Search(ctx context.Context, query string) ([]models.CropInfo, error) {
	sqlQuery := `
		SELECT * FROM crop_info
		WHERE title ILIKE $1 OR body ILIKE $1
		ORDER BY created_at DESC
	`

	infos := []models.CropInfo{}
	err := r.db.SelectContext(ctx, &infos, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске статей: %w", err)
	}

	return infos, nil
}

func (r *CropInfoRepositoryImpl) Update(ctx context.Context, cropInfoID string, patch UpdateCropInfoRequest) (*models.CropInfo, error) {
	var setParts []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Body != nil {
		addSet("body", *patch.Body)
	}
	if patch.MediaURL != nil {
		addSet("media_url", *patch.MediaURL)
	}
	if patch.Tags != nil {
		addSet("tags", pq.StringArray(*patch.Tags))
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, cropInfoID)
	}

	args = append(args, cropInfoID)
	query := fmt.Sprintf("UPDATE crop_info SET %s WHERE crop_info_id = $%d",
		strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при обновлении статьи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("статья с ID %s не найдена", cropInfoID)
	}

	return r.GetByID(ctx, cropInfoID)
}

func (r *CropInfoRepositoryImpl) Delete(ctx context.Context, cropInfoID string) error {
	query := `DELETE FROM crop_info WHERE crop_info_id = $1`

	result, err := r.db.ExecContext(ctx, query, cropInfoID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении статьи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("статья с ID %s не найдена", cropInfoID)
	}

	return nil
}
