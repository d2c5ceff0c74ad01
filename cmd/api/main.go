package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"whisp/cmd/app"
	"whisp/internal/config"
	handlers "whisp/internal/handler"
	"whisp/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.Session.Secret == "" {
		log.Fatal("SESSION_SECRET is not set in the .env file")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.GetStats).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/session", handler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/get", handler.GetPost).Methods(http.MethodGet)

	api.HandleFunc("/posts/like", handler.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/like", handler.UnlikePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/likes", handler.GetLikes).Methods(http.MethodGet)

	api.HandleFunc("/report/post", handler.ReportPost).Methods(http.MethodPost)

	api.HandleFunc("/user", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/user/update", handler.UpdateUser).Methods(http.MethodPatch)

	api.HandleFunc("/upload", handler.UploadImage).Methods(http.MethodPost)

	api.HandleFunc("/mod/posts", handler.ModDeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
