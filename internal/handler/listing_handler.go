package handlers

import (
	"encoding/json"
	"net/http"

	"agromarket/internal/repository"
	"agromarket/internal/service"

	"github.com/gorilla/mux"
)

type CreateListingRequest struct {
	Role         string  `json:"role" validate:"required,oneof=vendor buyer"`
	VendorName   string  `json:"vendorName" validate:"required"`
	ItemName     string  `json:"itemName" validate:"required"`
	Description  *string `json:"description"`
	Price        string  `json:"price" validate:"required"`
	CropType     *string `json:"cropType"`
	ContactPhone string  `json:"contactPhone" validate:"required"`
	ContactEmail string  `json:"contactEmail" validate:"required"`
	ImageURL     *string `json:"imageUrl"`
	Password     string  `json:"password" validate:"required"`
}

type UpdateListingBody struct {
	Role         *string `json:"role"`
	VendorName   *string `json:"vendorName"`
	ItemName     *string `json:"itemName"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	CropType     *string `json:"cropType"`
	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail"`
	ImageURL     *string `json:"imageUrl"`
	Password     *string `json:"password"`
}

type DeleteListingRequest struct {
	VendorName string `json:"vendorName"`
	Password   string `json:"password"`
}

// GET /api/listings?role=&cropType=&search=
func (h *Handlers) GetListings(w http.ResponseWriter, r *http.Request) {
	filters := repository.ListingFilters{
		Role:     r.URL.Query().Get("role"),
		CropType: r.URL.Query().Get("cropType"),
		Search:   r.URL.Query().Get("search"),
	}

	listings, err := h.ListingRepo.GetAll(r.Context(), filters)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, listings, http.StatusOK)
}

func (h *Handlers) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["id"]

	listing, err := h.ListingRepo.GetByID(r.Context(), listingID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// field format verification
	if msg := validateListingFields(&req.Price, &req.ContactEmail, &req.ContactPhone, &req.Password); msg != "" {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	serviceReq := service.CreateListingRequest{
		Role:         req.Role,
		VendorName:   req.VendorName,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Price:        req.Price,
		CropType:     req.CropType,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		ImageURL:     req.ImageURL,
		Password:     req.Password,
	}

	listing, err := h.ListingService.CreateListing(r.Context(), serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["id"]

	var body UpdateListingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// only provided fields are checked
	if msg := validateListingFields(body.Price, body.ContactEmail, body.ContactPhone, body.Password); msg != "" {
		WriteError(w, msg, http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdateListingRequest{
		Patch: repository.UpdateListingRequest{
			Role:         body.Role,
			VendorName:   body.VendorName,
			ItemName:     body.ItemName,
			Description:  body.Description,
			Price:        body.Price,
			CropType:     body.CropType,
			ContactPhone: body.ContactPhone,
			ContactEmail: body.ContactEmail,
			ImageURL:     body.ImageURL,
		},
		Password: body.Password,
	}

	listing, err := h.ListingService.UpdateListing(r.Context(), listingID, serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, listing, http.StatusOK)
}

// DELETE /api/listings/{id} проходит только с именем продавца и паролем
func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["id"]

	var req DeleteListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.VendorName == "" || req.Password == "" {
		WriteError(w, "Требуются имя продавца и пароль", http.StatusBadRequest)
		return
	}

	if err := h.ListingService.DeleteWithCredentials(r.Context(), listingID, req.VendorName, req.Password); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Объявление удалено"}, http.StatusOK)
}
