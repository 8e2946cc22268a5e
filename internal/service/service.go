package service

import (
	"agromarket/internal/config"
	"agromarket/internal/repository"
	"agromarket/internal/storage"
)

type Service struct {
	Listing   ListingService
	Auth      AuthService
	Product   ProductService
	Analytics AnalyticsService
	Upload    UploadService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	hasher := NewCredentialHasher(cfg.BcryptCost)

	return &Service{
		Listing:   NewListingService(rep.Listing, hasher),
		Auth:      NewAuthService(rep.User, cfg),
		Product:   NewProductService(rep.Product, rep.Vendor),
		Analytics: NewAnalyticsService(rep.Analytics, rep.Vendor),
		Upload:    NewUploadService(storage, cfg),
	}
}
