package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"slices"

	"agromarket/internal/service"

	"github.com/gorilla/mux"
)

type TrackProductViewRequest struct {
	ProductID string `json:"productId"`
}

type TrackContactClickRequest struct {
	VendorID    string `json:"vendorId"`
	ContactType string `json:"contactType"`
}

// viewerFromRequest collects what is known about the visitor,
// the user id is present only when a valid token came with the request
func viewerFromRequest(r *http.Request) service.ViewerContext {
	viewer := service.ViewerContext{}

	if userID, ok := r.Context().Value("userID").(string); ok {
		viewer.UserID = &userID
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if ip != "" {
		viewer.IPAddress = &ip
	}

	if ua := r.UserAgent(); ua != "" {
		viewer.UserAgent = &ua
	}

	return viewer
}

// POST /api/track/product-view
func (h *Handlers) TrackProductView(w http.ResponseWriter, r *http.Request) {
	var req TrackProductViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.ProductID == "" {
		WriteError(w, "productId: обязательное поле", http.StatusBadRequest)
		return
	}

	if err := h.AnalyticsService.TrackProductView(r.Context(), req.ProductID, viewerFromRequest(r)); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Просмотр записан"}, http.StatusCreated)
}

// POST /api/track/contact-click
func (h *Handlers) TrackContactClick(w http.ResponseWriter, r *http.Request) {
	var req TrackContactClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.VendorID == "" {
		WriteError(w, "vendorId: обязательное поле", http.StatusBadRequest)
		return
	}

	if !slices.Contains([]string{"phone", "whatsapp", "email"}, req.ContactType) {
		WriteError(w, "contactType: должен быть phone, whatsapp или email", http.StatusBadRequest)
		return
	}

	if err := h.AnalyticsService.TrackContactClick(r.Context(), req.VendorID, req.ContactType, viewerFromRequest(r)); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Клик записан"}, http.StatusCreated)
}

// GET /api/analytics/vendor/{id} все суммы за все время
func (h *Handlers) GetVendorAnalytics(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["id"]

	analytics, err := h.AnalyticsService.GetVendorAnalytics(r.Context(), vendorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, analytics, http.StatusOK)
}
