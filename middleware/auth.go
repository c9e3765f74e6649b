package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"expensetracker/backend/security"
)

// Define context keys
type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware verifies bearer tokens from the Authorization header and
// puts the authenticated user id into the request context. Every handler
// behind it reads identity from the context only — there is no ambient
// auth state anywhere else.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		idToken := extractToken(r.Header.Get("Authorization"))
		if idToken == "" {
			writeUnauthorized(w, "Not authorized, no token")
			return
		}

		userID, err := security.ParseToken(idToken)
		if err != nil {
			log.Printf("Error verifying token: %v", err)
			writeUnauthorized(w, "Not authorized, token failed")
			return
		}

		// Add the user ID to the request context
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// GetUserIDFromContext retrieves the user ID from the request context
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
