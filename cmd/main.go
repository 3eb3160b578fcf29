// @title Taskhive Backend API
// @version 1.0
// @description Taskhive Backend API for per-user todo management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/cors"

	_ "TASKHIVE_BACK-END/docs" // This is required for swagger
	"TASKHIVE_BACK-END/internal/config"
	"TASKHIVE_BACK-END/internal/handlers"
	"TASKHIVE_BACK-END/internal/middleware"
	"TASKHIVE_BACK-END/internal/migrations"
	"TASKHIVE_BACK-END/internal/repositories/todos"
	"TASKHIVE_BACK-END/internal/repositories/tokens"
	"TASKHIVE_BACK-END/internal/repositories/users"
	"TASKHIVE_BACK-END/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.GetDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	// Ping at boot so a bad DSN fails fast
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// Apply schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		log.Fatalf("goose dialect: %v", err)
	}
	if err := goose.UpContext(context.Background(), db, "."); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// --- HTTP Handlers ---

	usersRepo := users.NewPostgresRepository(db)
	tokensRepo := tokens.NewPostgresRepository(db)
	todosRepo := todos.NewPostgresRepository(db)

	authenticator := middleware.NewAuthenticator(tokensRepo, &cfg.JWT)
	authHandler := handlers.NewAuthHandler(usersRepo, tokensRepo, &cfg.JWT)
	todosHandler := handlers.NewTodosHandler(todosRepo)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup all routes
	routes.SetupRoutes(authenticator, authHandler, todosHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.AuthHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
