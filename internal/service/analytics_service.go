package service

import (
	"context"

	"agromarket/internal/models"
	"agromarket/internal/repository"
)

type AnalyticsService interface {
	TrackProductView(ctx context.Context, productID string, viewer ViewerContext) error
	TrackContactClick(ctx context.Context, vendorID, contactType string, viewer ViewerContext) error
	GetVendorAnalytics(ctx context.Context, vendorID string) (*VendorAnalytics, error)
}

// ViewerContext carries whatever is known about the visitor, all fields optional
type ViewerContext struct {
	UserID    *string
	IPAddress *string
	UserAgent *string
}

type VendorAnalytics struct {
	ProductViews  []repository.ProductViewCount  `json:"productViews"`
	ContactClicks []repository.ContactClickCount `json:"contactClicks"`
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	vendorRepo    repository.VendorRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, vendorRepo repository.VendorRepository) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		vendorRepo:    vendorRepo,
	}
}

func (s *analyticsService) TrackProductView(ctx context.Context, productID string, viewer ViewerContext) error {
	view := &models.ProductView{
		ProductID: productID,
		UserID:    viewer.UserID,
		IPAddress: viewer.IPAddress,
		UserAgent: viewer.UserAgent,
	}

	return s.analyticsRepo.CreateProductView(ctx, view)
}

func (s *analyticsService) TrackContactClick(ctx context.Context, vendorID, contactType string, viewer ViewerContext) error {
	click := &models.ContactClick{
		VendorID:    vendorID,
		ContactType: contactType,
		UserID:      viewer.UserID,
		IPAddress:   viewer.IPAddress,
		UserAgent:   viewer.UserAgent,
	}

	return s.analyticsRepo.CreateContactClick(ctx, click)
}

// GetVendorAnalytics returns all-time totals, no time windowing
func (s *analyticsService) GetVendorAnalytics(ctx context.Context, vendorID string) (*VendorAnalytics, error) {
	_, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	views, err := s.analyticsRepo.CountViewsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	clicks, err := s.analyticsRepo.CountClicksByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return &VendorAnalytics{
		ProductViews:  views,
		ContactClicks: clicks,
	}, nil
}
