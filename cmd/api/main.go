package main

import (
	"fmt"
	"log"
	"net/http"

	"agromarket/cmd/app"
	"agromarket/internal/config"
	handlers "agromarket/internal/handler"
	"agromarket/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, store, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.HomeHandler).Methods("GET")
	router.HandleFunc("/health", handler.HealthHandler).Methods("GET")

	router.HandleFunc("/api/auth/register", handler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", handler.Login).Methods("POST")
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods("POST")

	// anonymous listings, the password travels in the request body
	router.HandleFunc("/api/listings", handler.GetListings).Methods("GET")
	router.HandleFunc("/api/listings", handler.CreateListing).Methods("POST")
	router.HandleFunc("/api/listings/{id}", handler.GetListing).Methods("GET")
	router.HandleFunc("/api/listings/{id}", handler.UpdateListing).Methods("PATCH")
	router.HandleFunc("/api/listings/{id}", handler.DeleteListing).Methods("DELETE")

	router.HandleFunc("/api/crop-info", handler.GetCropInfoList).Methods("GET")
	router.HandleFunc("/api/crop-info", handler.CreateCropInfo).Methods("POST")
	router.HandleFunc("/api/crop-info/{id}", handler.GetCropInfo).Methods("GET")
	router.HandleFunc("/api/crop-info/{id}", handler.UpdateCropInfo).Methods("PATCH")
	router.HandleFunc("/api/crop-info/{id}", handler.DeleteCropInfo).Methods("DELETE")

	router.HandleFunc("/api/questions", handler.GetQuestions).Methods("GET")
	router.HandleFunc("/api/questions", handler.CreateQuestion).Methods("POST")
	router.HandleFunc("/api/questions/{id}", handler.GetQuestion).Methods("GET")
	router.HandleFunc("/api/questions/{id}", handler.DeleteQuestion).Methods("DELETE")
	router.HandleFunc("/api/questions/{id}/answers", handler.GetAnswers).Methods("GET")
	router.HandleFunc("/api/answers", handler.CreateAnswer).Methods("POST")
	router.HandleFunc("/api/answers/{id}", handler.DeleteAnswer).Methods("DELETE")

	router.HandleFunc("/api/categories", handler.GetCategories).Methods("GET")
	router.HandleFunc("/api/vendors", handler.GetVendors).Methods("GET")
	router.HandleFunc("/api/vendors/{id}", handler.GetVendor).Methods("GET")
	router.HandleFunc("/api/products", handler.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", handler.GetProduct).Methods("GET")

	router.HandleFunc("/api/upload-image", handler.UploadImage).Methods("POST")
	router.HandleFunc("/api/images/{bucket}/{object:.*}", handler.ServeImage).Methods("GET")

	// track endpoints accept anonymous traffic but pick up the user when a token is present
	track := router.PathPrefix("/api/track").Subrouter()
	track.Use(middleware.OptionalAuthMiddleware(services.Auth))
	track.HandleFunc("/product-view", handler.TrackProductView).Methods("POST")
	track.HandleFunc("/contact-click", handler.TrackContactClick).Methods("POST")

	// routes requiring authorization
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(services.Auth))
	protected.HandleFunc("/me", handler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/vendors", handler.CreateVendor).Methods("POST")
	protected.HandleFunc("/my-vendor", handler.GetMyVendor).Methods("GET")
	protected.HandleFunc("/my-products", handler.GetMyProducts).Methods("GET")
	protected.HandleFunc("/products", handler.CreateProduct).Methods("POST")
	protected.HandleFunc("/products/{id}", handler.UpdateProduct).Methods("PATCH")
	protected.HandleFunc("/products/{id}", handler.DeleteProduct).Methods("DELETE")
	protected.HandleFunc("/analytics/vendor/{id}", handler.GetVendorAnalytics).Methods("GET")

	// administrator routes
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware(services.Auth), middleware.RoleMiddleware("admin"))
	admin.HandleFunc("/vendors", handler.GetVendorsByStatus).Methods("GET")
	admin.HandleFunc("/vendors/{id}/status", handler.UpdateVendorStatus).Methods("PATCH")
	admin.HandleFunc("/products/{id}/flag", handler.FlagProduct).Methods("PATCH")
	admin.HandleFunc("/categories", handler.CreateCategory).Methods("POST")

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Адресс: http://localhost:%d/\n", cfg.ServerPort)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
