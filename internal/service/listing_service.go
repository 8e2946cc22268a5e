package service

import (
	"context"
	"fmt"

	"agromarket/internal/models"
	"agromarket/internal/repository"
)

type ListingService interface {
	CreateListing(ctx context.Context, req CreateListingRequest) (*models.Listing, error)
	UpdateListing(ctx context.Context, listingID string, req UpdateListingRequest) (*models.Listing, error)
	DeleteWithCredentials(ctx context.Context, listingID, vendorName, password string) error
}

type CreateListingRequest struct {
	Role         string
	VendorName   string
	ItemName     string
	Description  *string
	Price        string
	CropType     *string
	ContactPhone string
	ContactEmail string
	ImageURL     *string
	Password     string
}

// UpdateListingRequest is the service-level patch: a plaintext password here
// is hashed before it reaches the repository.
type UpdateListingRequest struct {
	Patch    repository.UpdateListingRequest
	Password *string
}

type listingService struct {
	listingRepo repository.ListingRepository
	hasher      CredentialHasher
}

func NewListingService(listingRepo repository.ListingRepository, hasher CredentialHasher) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		hasher:      hasher,
	}
}

func (s *listingService) CreateListing(ctx context.Context, req CreateListingRequest) (*models.Listing, error) {
	passwordHash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Role:         req.Role,
		VendorName:   req.VendorName,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Price:        req.Price,
		CropType:     req.CropType,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		ImageURL:     req.ImageURL,
		PasswordHash: passwordHash,
	}

	err = s.listingRepo.Create(ctx, listing)
	if err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *listingService) UpdateListing(ctx context.Context, listingID string, req UpdateListingRequest) (*models.Listing, error) {
	patch := req.Patch

	if req.Password != nil {
		passwordHash, err := s.hasher.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &passwordHash
	}

	return s.listingRepo.Update(ctx, listingID, patch)
}

// DeleteWithCredentials deletes a listing only when the caller proves
// authorship. A wrong name and a wrong password produce the same error
// so the response does not leak which field failed.
func (s *listingService) DeleteWithCredentials(ctx context.Context, listingID, vendorName, password string) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.VendorName != vendorName || !s.hasher.VerifyPassword(password, listing.PasswordHash) {
		return fmt.Errorf("неверное имя продавца или пароль")
	}

	return s.listingRepo.Delete(ctx, listingID)
}
