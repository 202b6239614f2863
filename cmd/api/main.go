package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"personalsite/cmd/app"
	"personalsite/internal/config"
	handlers "personalsite/internal/handler"
	"personalsite/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/user", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/check", handler.CheckAuth).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{slug}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{slug}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{slug}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/api/comments/{slug}", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/comments/{slug}", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/api/comments/{slug}/{commentId}/like", handler.LikeComment).Methods(http.MethodPost)
	router.HandleFunc("/api/comments/{slug}/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)

	router.HandleFunc("/api/about", handler.GetAbout).Methods(http.MethodGet)
	router.HandleFunc("/api/about/update", handler.UpdateAbout).Methods(http.MethodPost)

	router.HandleFunc("/api/projects/config", handler.GetProjectConfig).Methods(http.MethodGet)
	router.HandleFunc("/api/projects/config", handler.UpdateProjectConfig).Methods(http.MethodPut)

	router.HandleFunc("/api/resume", handler.GetResume).Methods(http.MethodGet)
	router.HandleFunc("/api/resume/upload", handler.UploadResume).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
