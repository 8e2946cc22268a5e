package test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromarket/internal/config"
	handlers "agromarket/internal/handler"
	"agromarket/internal/repository"
	"agromarket/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnalyticsHandlers(analyticsService *MockAnalyticsService) *handlers.Handlers {
	return &handlers.Handlers{
		AnalyticsService: analyticsService,
		Cfg:              &config.Config{},
		Validate:         validator.New(),
	}
}

func TestTrackProductViewHandler(t *testing.T) {
	t.Run("Анонимный просмотр без userID", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		mockAnalyticsService.On("TrackProductView", mock.Anything, "product1",
			mock.MatchedBy(func(viewer service.ViewerContext) bool {
				return viewer.UserID == nil && viewer.IPAddress != nil
			})).Return(nil)

		bodyBytes, _ := json.Marshal(map[string]string{"productId": "product1"})
		req := httptest.NewRequest(http.MethodPost, "/api/track/product-view", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.TrackProductView(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAnalyticsService.AssertExpectations(t)
	})

	t.Run("Просмотр авторизованного пользователя", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		mockAnalyticsService.On("TrackProductView", mock.Anything, "product1",
			mock.MatchedBy(func(viewer service.ViewerContext) bool {
				return viewer.UserID != nil && *viewer.UserID == "user1"
			})).Return(nil)

		bodyBytes, _ := json.Marshal(map[string]string{"productId": "product1"})
		req := httptest.NewRequest(http.MethodPost, "/api/track/product-view", bytes.NewReader(bodyBytes))
		req = req.WithContext(context.WithValue(req.Context(), "userID", "user1"))
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.TrackProductView(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAnalyticsService.AssertExpectations(t)
	})

	t.Run("Несуществующий товар", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		mockAnalyticsService.On("TrackProductView", mock.Anything, "missing", mock.Anything).
			Return(errors.New("товар с ID missing не найден"))

		bodyBytes, _ := json.Marshal(map[string]string{"productId": "missing"})
		req := httptest.NewRequest(http.MethodPost, "/api/track/product-view", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.TrackProductView(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Без productId запрос отклоняется", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		bodyBytes, _ := json.Marshal(map[string]string{})
		req := httptest.NewRequest(http.MethodPost, "/api/track/product-view", bytes.NewReader(bodyBytes))
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.TrackProductView(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAnalyticsService.AssertNotCalled(t, "TrackProductView", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTrackContactClickHandler(t *testing.T) {
	tests := []struct {
		name           string
		contactType    string
		expectedStatus int
		shouldCallMock bool
	}{
		{
			name:           "Клик по WhatsApp",
			contactType:    "whatsapp",
			expectedStatus: http.StatusCreated,
			shouldCallMock: true,
		},
		{
			name:           "Клик по телефону",
			contactType:    "phone",
			expectedStatus: http.StatusCreated,
			shouldCallMock: true,
		},
		{
			name:           "Недопустимый тип контакта",
			contactType:    "telegram",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAnalyticsService := new(MockAnalyticsService)

			if tt.shouldCallMock {
				mockAnalyticsService.On("TrackContactClick", mock.Anything, "vendor1", tt.contactType, mock.Anything).
					Return(nil)
			}

			bodyBytes, _ := json.Marshal(map[string]string{
				"vendorId":    "vendor1",
				"contactType": tt.contactType,
			})
			req := httptest.NewRequest(http.MethodPost, "/api/track/contact-click", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := newAnalyticsHandlers(mockAnalyticsService)
			handler.TrackContactClick(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockAnalyticsService.AssertExpectations(t)
		})
	}
}

func TestGetVendorAnalyticsHandler(t *testing.T) {
	t.Run("Суммы по товарам и контактам", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		mockAnalyticsService.On("GetVendorAnalytics", mock.Anything, "vendor1").
			Return(&service.VendorAnalytics{
				ProductViews: []repository.ProductViewCount{
					{ProductID: "product1", ProductName: "Семена пшеницы", Count: 12},
				},
				ContactClicks: []repository.ContactClickCount{
					{ContactType: "whatsapp", Count: 7},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/vendor/vendor1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "vendor1"})
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.GetVendorAnalytics(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Contains(t, response, "productViews")
		assert.Contains(t, response, "contactClicks")
	})

	t.Run("Несуществующий продавец", func(t *testing.T) {
		mockAnalyticsService := new(MockAnalyticsService)

		mockAnalyticsService.On("GetVendorAnalytics", mock.Anything, "missing").
			Return(nil, errors.New("продавец с ID missing не найден"))

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/vendor/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		handler := newAnalyticsHandlers(mockAnalyticsService)
		handler.GetVendorAnalytics(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
