package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TASKHIVE_BACK-END/internal/handlers"
	"TASKHIVE_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(auth *middleware.Authenticator, authHandler *handlers.AuthHandler, todosHandler *handlers.TodosHandler, healthHandler *handlers.HealthHandler) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// User routes
	http.HandleFunc("/users", authHandler.Register)
	http.HandleFunc("/users/login", authHandler.Login)
	http.HandleFunc("/users/me", auth.Require(authHandler.Me))
	http.HandleFunc("/users/me/token", auth.Require(authHandler.Logout))

	// Todo routes
	http.HandleFunc("/todos", auth.Require(todosHandler.Todos))
	http.HandleFunc("/todos/", auth.Require(todosHandler.TodoDetail))

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Taskhive backend is running."))
}
