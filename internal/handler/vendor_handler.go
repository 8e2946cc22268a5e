package handlers

import (
	"encoding/json"
	"net/http"
	"slices"

	"agromarket/internal/models"

	"github.com/gorilla/mux"
)

type CreateVendorRequest struct {
	StoreName   string  `json:"storeName" validate:"required"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
	CategoryID  *string `json:"categoryId"`
	Phone       *string `json:"phone"`
	Whatsapp    *string `json:"whatsapp"`
	Email       *string `json:"email"`
}

// POST /api/vendors создает профиль продавца в статусе pending
func (h *Handlers) CreateVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// one vendor profile per user
	if existing, err := h.VendorRepo.GetByUserID(r.Context(), userID); err == nil && existing != nil {
		WriteError(w, "Профиль продавца уже существует", http.StatusConflict)
		return
	}

	vendor := &models.Vendor{
		UserID:      userID,
		StoreName:   req.StoreName,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		CategoryID:  req.CategoryID,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		Email:       req.Email,
		Status:      "pending",
	}

	if err := h.VendorRepo.Create(r.Context(), vendor); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, vendor, http.StatusCreated)
}

// GET /api/vendors?category= возвращает только одобренных
func (h *Handlers) GetVendors(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category")

	vendors, err := h.VendorRepo.GetApproved(r.Context(), categoryID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, vendors, http.StatusOK)
}

func (h *Handlers) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["id"]

	vendor, err := h.VendorRepo.GetByID(r.Context(), vendorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, vendor, http.StatusOK)
}

// GET /api/my-vendor
func (h *Handlers) GetMyVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	vendor, err := h.VendorRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, vendor, http.StatusOK)
}

// GET /api/admin/vendors?status=
func (h *Handlers) GetVendorsByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "pending"
	}

	vendors, err := h.VendorRepo.GetByStatus(r.Context(), status)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, vendors, http.StatusOK)
}

// PATCH /api/admin/vendors/{id}/status
func (h *Handlers) UpdateVendorStatus(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if !slices.Contains([]string{"pending", "approved", "rejected"}, req.Status) {
		WriteError(w, "status: должен быть pending, approved или rejected", http.StatusBadRequest)
		return
	}

	if err := h.VendorRepo.UpdateStatus(r.Context(), vendorID, req.Status); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Статус продавца обновлен"}, http.StatusOK)
}
