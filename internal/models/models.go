package models

import (
	"time"

	"github.com/lib/pq"
)

type Listing struct {
	ListingID    string    `json:"listingId" db:"listing_id"`
	Role         string    `json:"role" db:"role"`
	VendorName   string    `json:"vendorName" db:"vendor_name"`
	ItemName     string    `json:"itemName" db:"item_name"`
	Description  *string   `json:"description" db:"description"`
	Price        string    `json:"price" db:"price"`
	CropType     *string   `json:"cropType" db:"crop_type"`
	ContactPhone string    `json:"contactPhone" db:"contact_phone"`
	ContactEmail string    `json:"contactEmail" db:"contact_email"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type CropInfo struct {
	CropInfoID string         `json:"cropInfoId" db:"crop_info_id"`
	Title      string         `json:"title" db:"title"`
	Body       string         `json:"body" db:"body"`
	MediaURL   *string        `json:"mediaUrl" db:"media_url"`
	Tags       pq.StringArray `json:"tags" db:"tags"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`
}

type Question struct {
	QuestionID string    `json:"questionId" db:"question_id"`
	Title      string    `json:"title" db:"title"`
	Body       string    `json:"body" db:"body"`
	AuthorName string    `json:"authorName" db:"author_name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Answer struct {
	AnswerID   string    `json:"answerId" db:"answer_id"`
	QuestionID string    `json:"questionId" db:"question_id"`
	Body       string    `json:"body" db:"body"`
	AuthorName string    `json:"authorName" db:"author_name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	CategoryID string    `json:"categoryId" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	Slug       string    `json:"slug" db:"slug"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Vendor struct {
	VendorID    string    `json:"vendorId" db:"vendor_id"`
	UserID      string    `json:"userId" db:"user_id"`
	StoreName   string    `json:"storeName" db:"store_name"`
	Description *string   `json:"description" db:"description"`
	LogoURL     *string   `json:"logoUrl" db:"logo_url"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	Phone       *string   `json:"phone" db:"phone"`
	Whatsapp    *string   `json:"whatsapp" db:"whatsapp"`
	Email       *string   `json:"email" db:"email"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type Product struct {
	ProductID   string    `json:"productId" db:"product_id"`
	VendorID    string    `json:"vendorId" db:"vendor_id"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       string    `json:"price" db:"price"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	Status      string    `json:"status" db:"status"`
	FlagReason  *string   `json:"flagReason" db:"flag_reason"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type ProductView struct {
	ViewID    string    `json:"viewId" db:"view_id"`
	ProductID string    `json:"productId" db:"product_id"`
	UserID    *string   `json:"userId" db:"user_id"`
	IPAddress *string   `json:"ipAddress" db:"ip_address"`
	UserAgent *string   `json:"userAgent" db:"user_agent"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ContactClick struct {
	ClickID     string    `json:"clickId" db:"click_id"`
	VendorID    string    `json:"vendorId" db:"vendor_id"`
	ContactType string    `json:"contactType" db:"contact_type"`
	UserID      *string   `json:"userId" db:"user_id"`
	IPAddress   *string   `json:"ipAddress" db:"ip_address"`
	UserAgent   *string   `json:"userAgent" db:"user_agent"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
