package handlers

import (
	"encoding/json"
	"net/http"

	"agromarket/internal/models"

	"github.com/gorilla/mux"
)

type CreateQuestionRequest struct {
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	AuthorName string `json:"authorName" validate:"required"`
}

type CreateAnswerRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Body       string `json:"body" validate:"required"`
	AuthorName string `json:"authorName" validate:"required"`
}

// GET /api/questions?search=
func (h *Handlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var questions []models.Question
	var err error

	if search != "" {
		questions, err = h.ForumRepo.SearchQuestions(r.Context(), search)
	} else {
		questions, err = h.ForumRepo.GetAllQuestions(r.Context())
	}

	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, questions, http.StatusOK)
}

func (h *Handlers) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["id"]

	question, err := h.ForumRepo.GetQuestionByID(r.Context(), questionID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, question, http.StatusOK)
}

func (h *Handlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	question := &models.Question{
		Title:      req.Title,
		Body:       req.Body,
		AuthorName: req.AuthorName,
	}

	if err := h.ForumRepo.CreateQuestion(r.Context(), question); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, question, http.StatusOK)
}

func (h *Handlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["id"]

	if err := h.ForumRepo.DeleteQuestion(r.Context(), questionID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Вопрос удален"}, http.StatusOK)
}

// GET /api/questions/{id}/answers
func (h *Handlers) GetAnswers(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["id"]

	answers, err := h.ForumRepo.GetAnswersByQuestionID(r.Context(), questionID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, answers, http.StatusOK)
}

// POST /api/answers
func (h *Handlers) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// the question has to exist
	if _, err := h.ForumRepo.GetQuestionByID(r.Context(), req.QuestionID); err != nil {
		WriteDomainError(w, err)
		return
	}

	answer := &models.Answer{
		QuestionID: req.QuestionID,
		Body:       req.Body,
		AuthorName: req.AuthorName,
	}

	if err := h.ForumRepo.CreateAnswer(r.Context(), answer); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, answer, http.StatusOK)
}

func (h *Handlers) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	answerID := mux.Vars(r)["id"]

	if err := h.ForumRepo.DeleteAnswer(r.Context(), answerID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Ответ удален"}, http.StatusOK)
}
