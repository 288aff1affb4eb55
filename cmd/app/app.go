package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"qaforum/internal/config"
	"qaforum/internal/database"
	handlers "qaforum/internal/handler"
	"qaforum/internal/middleware"
	"qaforum/internal/repository"
	"qaforum/internal/repository/memory"
	"qaforum/internal/service"
	"qaforum/internal/storage"

	"github.com/gorilla/mux"
)

// App wires storage, the optional archive and services. db is nil for the memory driver.
func App(ctx context.Context, cfg *config.Config) (*database.DB, *service.Service, error) {
	var (
		db   *database.DB
		repo *repository.Repository
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Println("Используется хранилище в памяти")
		repo = memory.NewRepository(memory.NewStore())
	case config.StoragePostgres:
		var err error
		db, err = database.ConnectDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
		}
		repo = repository.NewRepository(db.DB)
	default:
		return nil, nil, fmt.Errorf("неизвестный драйвер хранилища: %s", cfg.StorageDriver)
	}

	// archive stays a nil interface when MinIO is disabled
	var archive storage.Archive
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			if db != nil {
				db.CloseDB()
			}
			return nil, nil, fmt.Errorf("не удалось инициализировать MinIO: %w", err)
		}
		archive = minioClient
		log.Printf("Архив удаленных постов: бакет %s", cfg.MinIO.BucketName)
	}

	tokens := service.NewTokenService(cfg)
	services := service.NewService(repo, tokens, archive)

	return db, services, nil
}

// NewRouter registers every route. CORS is the outermost layer so preflight
// requests never reach the method matcher.
func NewRouter(services *service.Service) http.Handler {
	h := handlers.NewHandlers(services)
	auth := middleware.AuthMiddleware(services.Token)

	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	r.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	r.Handle("/posts", auth(http.HandlerFunc(h.CreatePost))).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/posts/{id}", auth(http.HandlerFunc(h.DeletePost))).Methods(http.MethodDelete)

	r.HandleFunc("/posts/{id}/answers", h.GetAnswers).Methods(http.MethodGet)
	r.Handle("/posts/{id}/answers", auth(http.HandlerFunc(h.CreateAnswer))).Methods(http.MethodPost)
	r.Handle("/answers/{id}", auth(http.HandlerFunc(h.DeleteAnswer))).Methods(http.MethodDelete)

	r.Handle("/protected", auth(http.HandlerFunc(h.Protected))).Methods(http.MethodGet)
	r.Handle("/me", auth(http.HandlerFunc(h.GetCurrentUser))).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "Маршрут не найден", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)
}
