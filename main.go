package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"expensetracker/backend/database"
	"expensetracker/backend/handlers"
	"expensetracker/backend/middleware"
	"expensetracker/backend/security"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	security.InitializeTokens()

	// Initialize database
	err := database.InitDB()
	if err != nil {
		log.Fatal(err)
	}

	// Create router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.EnableCORS)

	// Register routes with both direct paths and /api prefix to maintain compatibility
	registerRoutes(r)
	apiRouter := r.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter)

	// Configure the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Start the server
	log.Printf("Starting server on port %s...", port)
	log.Fatal(srv.ListenAndServe())
}

// registerRoutes sets up all API routes
func registerRoutes(r *mux.Router) {
	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")
	r.HandleFunc("/auth/register", handlers.RegisterUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/login", handlers.LoginUser).Methods("POST", "OPTIONS")

	// Create a subrouter for authenticated routes
	protectedRouter := r.PathPrefix("").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware)

	// Protected auth routes
	protectedRouter.HandleFunc("/auth/me", handlers.GetMe).Methods("GET")
	protectedRouter.HandleFunc("/auth/profile", handlers.UpdateProfile).Methods("PUT")

	// Protected expense routes
	protectedRouter.HandleFunc("/expenses", handlers.GetExpenses).Methods("GET")
	protectedRouter.HandleFunc("/expenses", handlers.CreateExpense).Methods("POST")
	protectedRouter.HandleFunc("/expenses/monthly/{year}/{month}", handlers.GetMonthlyExpenses).Methods("GET")
	protectedRouter.HandleFunc("/expenses/{id}", handlers.GetExpense).Methods("GET")
	protectedRouter.HandleFunc("/expenses/{id}", handlers.UpdateExpense).Methods("PUT")
	protectedRouter.HandleFunc("/expenses/{id}", handlers.DeleteExpense).Methods("DELETE")

	// Protected income routes
	protectedRouter.HandleFunc("/incomes", handlers.GetIncomes).Methods("GET")
	protectedRouter.HandleFunc("/incomes", handlers.CreateIncome).Methods("POST")
	protectedRouter.HandleFunc("/incomes/monthly/{year}/{month}", handlers.GetMonthlyIncomes).Methods("GET")
	protectedRouter.HandleFunc("/incomes/{id}", handlers.GetIncome).Methods("GET")
	protectedRouter.HandleFunc("/incomes/{id}", handlers.UpdateIncome).Methods("PUT")
	protectedRouter.HandleFunc("/incomes/{id}", handlers.DeleteIncome).Methods("DELETE")
}
