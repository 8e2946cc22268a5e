package handlers

import (
	"encoding/json"
	"net/http"

	"agromarket/internal/models"
	"agromarket/internal/repository"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

type CreateCropInfoRequest struct {
	Title    string   `json:"title" validate:"required"`
	Body     string   `json:"body" validate:"required"`
	MediaURL *string  `json:"mediaUrl"`
	Tags     []string `json:"tags"`
}

// GET /api/crop-info?search=
func (h *Handlers) GetCropInfoList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var infos []models.CropInfo
	var err error

	if search != "" {
		infos, err = h.CropInfoRepo.Search(r.Context(), search)
	} else {
		infos, err = h.CropInfoRepo.GetAll(r.Context())
	}

	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, infos, http.StatusOK)
}

func (h *Handlers) GetCropInfo(w http.ResponseWriter, r *http.Request) {
	cropInfoID := mux.Vars(r)["id"]

	info, err := h.CropInfoRepo.GetByID(r.Context(), cropInfoID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, info, http.StatusOK)
}

func (h *Handlers) CreateCropInfo(w http.ResponseWriter, r *http.Request) {
	var req CreateCropInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	info := &models.CropInfo{
		Title:    req.Title,
		Body:     req.Body,
		MediaURL: req.MediaURL,
		Tags:     pq.StringArray(req.Tags),
	}

	if err := h.CropInfoRepo.Create(r.Context(), info); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, info, http.StatusOK)
}

func (h *Handlers) UpdateCropInfo(w http.ResponseWriter, r *http.Request) {
	cropInfoID := mux.Vars(r)["id"]

	var patch repository.UpdateCropInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	info, err := h.CropInfoRepo.Update(r.Context(), cropInfoID, patch)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, info, http.StatusOK)
}

func (h *Handlers) DeleteCropInfo(w http.ResponseWriter, r *http.Request) {
	cropInfoID := mux.Vars(r)["id"]

	if err := h.CropInfoRepo.Delete(r.Context(), cropInfoID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Статья удалена"}, http.StatusOK)
}
