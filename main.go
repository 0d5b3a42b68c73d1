package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/yuki-dev/imagewsbackend/config"
	"github.com/yuki-dev/imagewsbackend/database"
	"github.com/yuki-dev/imagewsbackend/handlers"
	"github.com/yuki-dev/imagewsbackend/importer"
	"github.com/yuki-dev/imagewsbackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	registry, err := config.LoadWorkspaceRegistry(cfg.WorkspaceConfigPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to load workspace registry: %v", err)
	}
	log.Printf("Loaded %d workspace(s) from %s", len(registry.WorkspaceList), cfg.WorkspaceConfigPath)

	db, err := database.InitGormDB(database.InMemoryDSN)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to create schema: %v", err)
	}

	credRepo := repository.NewGormCredentialRepository(db)
	imageRepo := repository.NewGormImageRepository(db)
	tagRepo := repository.NewGormTagRepository(db)

	// the import must finish before the listener opens; no request may ever
	// observe a partially imported store
	imp := importer.NewImporter(imageRepo, tagRepo)
	if err := imp.Run(registry.WorkspaceList); err != nil {
		log.Fatalf("FATAL: Import failed: %v", err)
	}

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"}, //TODO: configurable
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(1 << 30))
	r.Use(corsHandler.Handler)

	workspaceHandler := &handlers.WorkspaceHandler{Registry: registry, CredRepo: credRepo}
	imageHandler := &handlers.ImageHandler{ImageRepo: imageRepo}
	tagHandler := &handlers.TagHandler{TagRepo: tagRepo}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/workspaces", workspaceHandler.ListWorkspaces)
		r.Post("/workspaces/login", workspaceHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(credRepo))
			r.Patch("/workspaces", workspaceHandler.ListWorkspaces)
			r.Get("/images", imageHandler.ListImages)
			r.Get("/tags", tagHandler.ListTags)
		})
	})

	serverAddr := ":" + cfg.Port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
