package handlers

import (
	"encoding/json"
	"net/http"
	"slices"

	"agromarket/internal/repository"
	"agromarket/internal/service"

	"github.com/gorilla/mux"
)

type CreateProductRequest struct {
	CategoryID  *string `json:"categoryId"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       string  `json:"price" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
}

// POST /api/products, только для одобренного продавца
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !pricePattern.MatchString(req.Price) {
		WriteError(w, "price: неверный формат цены, допустимо не более двух знаков после точки", http.StatusBadRequest)
		return
	}

	serviceReq := service.CreateProductRequest{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	product, err := h.ProductService.CreateProduct(r.Context(), userID, serviceReq)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, product, http.StatusCreated)
}

// GET /api/products?category=&vendor=&search= возвращает только активные
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	filters := repository.ProductFilters{
		CategoryID: r.URL.Query().Get("category"),
		VendorID:   r.URL.Query().Get("vendor"),
		Search:     r.URL.Query().Get("search"),
	}

	products, err := h.ProductRepo.GetActive(r.Context(), filters)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, products, http.StatusOK)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.ProductRepo.GetByID(r.Context(), productID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, product, http.StatusOK)
}

// GET /api/my-products товары продавца текущего пользователя
func (h *Handlers) GetMyProducts(w http.ResponseWriter, r *http.Request) {
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

	products, err := h.ProductRepo.GetByVendorID(r.Context(), vendor.VendorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, products, http.StatusOK)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	productID := mux.Vars(r)["id"]

	var patch repository.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if patch.Price != nil && !pricePattern.MatchString(*patch.Price) {
		WriteError(w, "price: неверный формат цены, допустимо не более двух знаков после точки", http.StatusBadRequest)
		return
	}

	product, err := h.ProductService.UpdateProduct(r.Context(), userID, productID, patch)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, product, http.StatusOK)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	productID := mux.Vars(r)["id"]

	if err := h.ProductService.DeleteProduct(r.Context(), userID, productID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Товар удален"}, http.StatusOK)
}

// PATCH /api/admin/products/{id}/flag
func (h *Handlers) FlagProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req struct {
		Status     string  `json:"status" validate:"required,oneof=active pending flagged removed"`
		FlagReason *string `json:"flagReason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if !slices.Contains([]string{"active", "pending", "flagged", "removed"}, req.Status) {
		WriteError(w, "status: должен быть active, pending, flagged или removed", http.StatusBadRequest)
		return
	}

	if err := h.ProductService.FlagProduct(r.Context(), productID, req.Status, req.FlagReason); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Статус товара обновлен"}, http.StatusOK)
}
