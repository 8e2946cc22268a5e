package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"agromarket/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ForumRepositoryImpl struct {
	db *sqlx.DB
}

func NewForumRepository(db *sqlx.DB) *ForumRepositoryImpl {
	return &ForumRepositoryImpl{db: db}
}

func (r *ForumRepositoryImpl) CreateQuestion(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (question_id, title, body, author_name, created_at)
		VALUES (:question_id, :title, :body, :author_name, :created_at)
	`

	if question.QuestionID == "" {
		question.QuestionID = uuid.New().String()
	}

	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, question)
	if err != nil {
		return fmt.Errorf("ошибка при создании вопроса: %w", err)
	}

	return nil
}

func (r *ForumRepositoryImpl) GetQuestionByID(ctx context.Context, questionID string) (*models.Question, error) {
	query := `SELECT * FROM questions WHERE question_id = $1`

	var question models.Question
	err := r.db.GetContext(ctx, &question, query, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("вопрос с ID %s не найден", questionID)
		}
		return nil, fmt.Errorf("ошибка при получении вопроса: %w", err)
	}

	return &question, nil
}

func (r *ForumRepositoryImpl) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	query := `SELECT * FROM questions ORDER BY created_at DESC`

	questions := []models.Question{}
	err := r.db.SelectContext(ctx, &questions, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении вопросов: %w", err)
	}

	return questions, nil
}

// SearchQuestions splits the query into keywords and matches any of them
// against title or body. Words of two letters and shorter are dropped;
// if nothing remains the full unfiltered list is returned on purpose.
func (r *ForumRepositoryImpl) SearchQuestions(ctx context.Context, query string) ([]models.Question, error) {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(word) > 2 {
			keywords = append(keywords, word)
		}
	}

	if len(keywords) == 0 {
		return r.GetAllQuestions(ctx)
	}

	var conditions []string
	var args []interface{}

	for _, keyword := range keywords {
		args = append(args, "%"+keyword+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", n))
		conditions = append(conditions, fmt.Sprintf("body ILIKE $%d", n))
	}

	sqlQuery := fmt.Sprintf(
		"SELECT * FROM questions WHERE %s ORDER BY created_at DESC",
		strings.Join(conditions, " OR "))

	questions := []models.Question{}
	err := r.db.SelectContext(ctx, &questions, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске вопросов: %w", err)
	}

	return questions, nil
}

func (r *ForumRepositoryImpl) DeleteQuestion(ctx context.Context, questionID string) error {
	query := `DELETE FROM questions WHERE question_id = $1`

	result, err := r.db.ExecContext(ctx, query, questionID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении вопроса: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("вопрос с ID %s не найден", questionID)
	}

	return nil
}

func (r *ForumRepositoryImpl) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	query := `
		INSERT INTO answers (answer_id, question_id, body, author_name, created_at)
		VALUES (:answer_id, :question_id, :body, :author_name, :created_at)
	`

	if answer.AnswerID == "" {
		answer.AnswerID = uuid.New().String()
	}

	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, answer)
	if err != nil {
		return fmt.Errorf("ошибка при создании ответа: %w", err)
	}

	return nil
}

func (r *ForumRepositoryImpl) GetAnswersByQuestionID(ctx context.Context, questionID string) ([]models.Answer, error) {
	query := `SELECT * FROM answers WHERE question_id = $1 ORDER BY created_at DESC`

	answers := []models.Answer{}
	err := r.db.SelectContext(ctx, &answers, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ответов: %w", err)
	}

	return answers, nil
}

func (r *ForumRepositoryImpl) DeleteAnswer(ctx context.Context, answerID string) error {
	query := `DELETE FROM answers WHERE answer_id = $1`

	result, err := r.db.ExecContext(ctx, query, answerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении ответа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ответ с ID %s не найден", answerID)
	}

	return nil
}
