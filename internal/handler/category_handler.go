package handlers

import (
	"encoding/json"
	"net/http"

	"agromarket/internal/models"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.GetAll(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, categories, http.StatusOK)
}

// POST /api/admin/categories
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	category := &models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := h.CategoryRepo.Create(r.Context(), category); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, category, http.StatusCreated)
}
