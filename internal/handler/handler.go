package handlers

import (
	"agromarket/internal/config"
	"agromarket/internal/database"
	"agromarket/internal/repository"
	"agromarket/internal/service"
	"agromarket/internal/storage"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	ListingService   service.ListingService
	ListingRepo      repository.ListingRepository
	CropInfoRepo     repository.CropInfoRepository
	ForumRepo        repository.ForumRepository
	AuthService      service.AuthService
	UserRepo         repository.UserRepository
	VendorRepo       repository.VendorRepository
	ProductService   service.ProductService
	ProductRepo      repository.ProductRepository
	CategoryRepo     repository.CategoryRepository
	AnalyticsService service.AnalyticsService
	UploadService    service.UploadService
	Storage          storage.Storage
	DB               database.MethodsDB
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, store storage.Storage, db database.MethodsDB, config *config.Config) *Handlers {
	return &Handlers{
		ListingService:   services.Listing,
		ListingRepo:      repo.Listing,
		CropInfoRepo:     repo.CropInfo,
		ForumRepo:        repo.Forum,
		AuthService:      services.Auth,
		UserRepo:         repo.User,
		VendorRepo:       repo.Vendor,
		ProductService:   services.Product,
		ProductRepo:      repo.Product,
		CategoryRepo:     repo.Category,
		AnalyticsService: services.Analytics,
		UploadService:    services.Upload,
		Storage:          store,
		DB:               db,
		Cfg:              config,
		Validate:         validator.New(),
	}
}
