package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agromarket/internal/config"
	handlers "agromarket/internal/handler"
	"agromarket/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newForumHandlers(forumRepo *MockForumRepository) *handlers.Handlers {
	return &handlers.Handlers{
		ForumRepo: forumRepo,
		Cfg:       &config.Config{},
		Validate:  validator.New(),
	}
}

func TestGetQuestionsHandler(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		mockSetup func(*MockForumRepository)
	}{
		{
			name: "Без поиска возвращаются все вопросы",
			url:  "/api/questions",
			mockSetup: func(repo *MockForumRepository) {
				repo.On("GetAllQuestions", mock.Anything).
					Return([]models.Question{
						{QuestionID: "q1", Title: "Посев пшеницы", Body: "Когда сеять?", AuthorName: "Иван", CreatedAt: time.Now()},
					}, nil)
			},
		},
		{
			name: "С поиском вызывается поиск по ключевым словам",
			url:  "/api/questions?search=пшеница",
			mockSetup: func(repo *MockForumRepository) {
				repo.On("SearchQuestions", mock.Anything, "пшеница").
					Return([]models.Question{
						{QuestionID: "q1", Title: "Посев пшеницы", Body: "Когда сеять?", AuthorName: "Иван", CreatedAt: time.Now()},
					}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockForumRepo := new(MockForumRepository)
			tt.mockSetup(mockForumRepo)

			handler := newForumHandlers(mockForumRepo)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler.GetQuestions(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "Посев пшеницы")

			mockForumRepo.AssertExpectations(t)
		})
	}
}

func TestCreateQuestionHandler(t *testing.T) {
	t.Run("Успешное создание вопроса", func(t *testing.T) {
		mockForumRepo := new(MockForumRepository)
		mockForumRepo.On("CreateQuestion", mock.Anything, mock.AnythingOfType("*models.Question")).
			Return(nil)

		bodyBytes, _ := json.Marshal(map[string]string{
			"title":      "Посев пшеницы",
			"body":       "Когда сеять озимую?",
			"authorName": "Иван",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newForumHandlers(mockForumRepo)
		handler.CreateQuestion(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockForumRepo.AssertExpectations(t)
	})

	t.Run("Вопрос без заголовка отклоняется", func(t *testing.T) {
		mockForumRepo := new(MockForumRepository)

		bodyBytes, _ := json.Marshal(map[string]string{
			"body":       "Когда сеять озимую?",
			"authorName": "Иван",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newForumHandlers(mockForumRepo)
		handler.CreateQuestion(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockForumRepo.AssertNotCalled(t, "CreateQuestion", mock.Anything, mock.Anything)
	})
}

func TestCreateAnswerHandler(t *testing.T) {
	t.Run("Ответ на существующий вопрос", func(t *testing.T) {
		mockForumRepo := new(MockForumRepository)
		mockForumRepo.On("GetQuestionByID", mock.Anything, "q1").
			Return(&models.Question{QuestionID: "q1", Title: "Посев"}, nil)
		mockForumRepo.On("CreateAnswer", mock.Anything, mock.AnythingOfType("*models.Answer")).
			Return(nil)

		bodyBytes, _ := json.Marshal(map[string]string{
			"questionId": "q1",
			"body":       "Сеять в конце августа",
			"authorName": "Петр",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newForumHandlers(mockForumRepo)
		handler.CreateAnswer(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockForumRepo.AssertExpectations(t)
	})

	t.Run("Ответ на несуществующий вопрос", func(t *testing.T) {
		mockForumRepo := new(MockForumRepository)
		mockForumRepo.On("GetQuestionByID", mock.Anything, "missing").
			Return(nil, errors.New("вопрос с ID missing не найден"))

		bodyBytes, _ := json.Marshal(map[string]string{
			"questionId": "missing",
			"body":       "Сеять в конце августа",
			"authorName": "Петр",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newForumHandlers(mockForumRepo)
		handler.CreateAnswer(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockForumRepo.AssertNotCalled(t, "CreateAnswer", mock.Anything, mock.Anything)
	})
}

func TestDeleteQuestionHandler(t *testing.T) {
	t.Run("Удаление несуществующего вопроса", func(t *testing.T) {
		mockForumRepo := new(MockForumRepository)
		mockForumRepo.On("DeleteQuestion", mock.Anything, "missing").
			Return(errors.New("вопрос с ID missing не найден"))

		req := httptest.NewRequest(http.MethodDelete, "/api/questions/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		handler := newForumHandlers(mockForumRepo)
		handler.DeleteQuestion(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
