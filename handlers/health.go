package handlers

import "net/http"

// HealthCheck reports that the API is up and where its resources live.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{
		"auth":     "/api/auth",
		"expenses": "/api/expenses",
		"incomes":  "/api/incomes",
	}, "Welcome to Expense Tracker API")
}
