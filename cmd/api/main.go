package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"oncolearn/cmd/app"
	"oncolearn/internal/config"
	handlers "oncolearn/internal/handler"
	"oncolearn/internal/logger"
	"oncolearn/internal/middleware"
	"oncolearn/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	// Missing storage settings must fail loudly at startup, not on first use.
	if missing := cfg.MissingStorageKeys(); len(missing) > 0 {
		logger.Log.Warnw("object storage is not fully configured, uploads will fail", "missing", missing)
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	signedIn := middleware.Require(service.LevelSignedIn)
	adminOnly := middleware.Require(service.LevelAdmin)

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", handler.RefreshToken).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	api.Handle("/me", signedIn(http.HandlerFunc(handler.GetCurrentUser))).Methods(http.MethodGet)
	api.Handle("/me", signedIn(http.HandlerFunc(handler.UpdateCurrentUser))).Methods(http.MethodPut)
	api.Handle("/me/password", signedIn(http.HandlerFunc(handler.UpdatePassword))).Methods(http.MethodPut)

	api.HandleFunc("/documents", handler.ListDocuments).Methods(http.MethodGet)
	api.Handle("/documents", signedIn(http.HandlerFunc(handler.UploadDocument))).Methods(http.MethodPost)
	api.HandleFunc("/documents/{id:[0-9]+}", handler.GetDocument).Methods(http.MethodGet)
	api.Handle("/documents/{id:[0-9]+}", signedIn(http.HandlerFunc(handler.UpdateDocument))).Methods(http.MethodPut)
	api.Handle("/documents/{id:[0-9]+}", signedIn(http.HandlerFunc(handler.DeleteDocument))).Methods(http.MethodDelete)
	api.Handle("/documents/{id:[0-9]+}/status", adminOnly(http.HandlerFunc(handler.SetDocumentStatus))).Methods(http.MethodPut)

	api.HandleFunc("/videos", handler.ListVideos).Methods(http.MethodGet)
	api.Handle("/videos", signedIn(http.HandlerFunc(handler.UploadVideo))).Methods(http.MethodPost)
	api.HandleFunc("/videos/{id:[0-9]+}", handler.GetVideo).Methods(http.MethodGet)
	api.Handle("/videos/{id:[0-9]+}", signedIn(http.HandlerFunc(handler.UpdateVideo))).Methods(http.MethodPut)
	api.Handle("/videos/{id:[0-9]+}", signedIn(http.HandlerFunc(handler.DeleteVideo))).Methods(http.MethodDelete)
	api.Handle("/videos/{id:[0-9]+}/status", adminOnly(http.HandlerFunc(handler.SetVideoStatus))).Methods(http.MethodPut)

	// Comment routes address content by singular kind: document or video.
	api.HandleFunc("/content/{contentType}/{id:[0-9]+}/comments", handler.ListComments).Methods(http.MethodGet)
	api.Handle("/content/{contentType}/{id:[0-9]+}/comments", signedIn(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	api.HandleFunc("/content/{contentType}/{id:[0-9]+}/comments/guest", handler.AddGuestComment).Methods(http.MethodPost)

	api.HandleFunc("/categories", handler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", handler.GetUser).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Handle("/comments", adminOnly(http.HandlerFunc(handler.ModerateComments))).Methods(http.MethodGet)
	admin.Handle("/comments/{id:[0-9]+}", adminOnly(http.HandlerFunc(handler.DeleteComment))).Methods(http.MethodDelete)
	admin.Handle("/categories", adminOnly(http.HandlerFunc(handler.CreateCategory))).Methods(http.MethodPost)
	admin.Handle("/categories/{id:[0-9]+}", adminOnly(http.HandlerFunc(handler.UpdateCategory))).Methods(http.MethodPut)
	admin.Handle("/categories/{id:[0-9]+}", adminOnly(http.HandlerFunc(handler.DeleteCategory))).Methods(http.MethodDelete)
	admin.Handle("/users", adminOnly(http.HandlerFunc(handler.ListUsers))).Methods(http.MethodGet)
	admin.Handle("/users/{id:[0-9]+}/role", adminOnly(http.HandlerFunc(handler.SetUserRole))).Methods(http.MethodPut)
	admin.Handle("/users/{id:[0-9]+}", adminOnly(http.HandlerFunc(handler.DeleteUser))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.Authenticate(services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Log.Infow("server starting", "addr", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
