package repository

import (
	"context"
	"time"

	"agromarket/internal/models"

	"github.com/jmoiron/sqlx"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, listingID string) (*models.Listing, error)
	GetAll(ctx context.Context, filters ListingFilters) ([]models.Listing, error)
	Update(ctx context.Context, listingID string, patch UpdateListingRequest) (*models.Listing, error)
	Delete(ctx context.Context, listingID string) error
}

type CropInfoRepository interface {
	Create(ctx context.Context, info *models.CropInfo) error
	GetByID(ctx context.Context, cropInfoID string) (*models.CropInfo, error)
	GetAll(ctx context.Context) ([]models.CropInfo, error)
	Search(ctx context.Context, query string) ([]models.CropInfo, error)
	Update(ctx context.Context, cropInfoID string, patch UpdateCropInfoRequest) (*models.CropInfo, error)
	Delete(ctx context.Context, cropInfoID string) error
}

type ForumRepository interface {
	CreateQuestion(ctx context.Context, question *models.Question) error
	GetQuestionByID(ctx context.Context, questionID string) (*models.Question, error)
	GetAllQuestions(ctx context.Context) ([]models.Question, error)
	SearchQuestions(ctx context.Context, query string) ([]models.Question, error)
	DeleteQuestion(ctx context.Context, questionID string) error
	CreateAnswer(ctx context.Context, answer *models.Answer) error
	GetAnswersByQuestionID(ctx context.Context, questionID string) ([]models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Vendor, error)
	GetApproved(ctx context.Context, categoryID string) ([]models.Vendor, error)
	GetByStatus(ctx context.Context, status string) ([]models.Vendor, error)
	UpdateStatus(ctx context.Context, vendorID, status string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	GetActive(ctx context.Context, filters ProductFilters) ([]models.Product, error)
	GetByVendorID(ctx context.Context, vendorID string) ([]models.Product, error)
	Update(ctx context.Context, productID string, patch UpdateProductRequest) (*models.Product, error)
	UpdateStatus(ctx context.Context, productID, status string, flagReason *string) error
	Delete(ctx context.Context, productID string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}

type AnalyticsRepository interface {
	CreateProductView(ctx context.Context, view *models.ProductView) error
	CreateContactClick(ctx context.Context, click *models.ContactClick) error
	CountViewsByVendor(ctx context.Context, vendorID string) ([]ProductViewCount, error)
	CountClicksByVendor(ctx context.Context, vendorID string) ([]ContactClickCount, error)
}

type Repository struct {
	Listing   ListingRepository
	CropInfo  CropInfoRepository
	Forum     ForumRepository
	User      UserRepository
	Vendor    VendorRepository
	Product   ProductRepository
	Category  CategoryRepository
	Analytics AnalyticsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Listing:   NewListingRepository(db),
		CropInfo:  NewCropInfoRepository(db),
		Forum:     NewForumRepository(db),
		User:      NewUserRepository(db),
		Vendor:    NewVendorRepository(db),
		Product:   NewProductRepository(db),
		Category:  NewCategoryRepository(db),
		Analytics: NewAnalyticsRepository(db),
	}
}
