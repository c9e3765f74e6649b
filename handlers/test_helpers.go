package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"expensetracker/backend/database"
	"expensetracker/backend/middleware"

	"github.com/google/uuid"
)

// Define constants for the test users that can be used across all tests
const (
	TestUserID  = "test-user-id"
	OtherUserID = "other-user-id"
)

// SetupTestDB initializes a fresh in-memory database with the app schema
// and two seeded users.
func SetupTestDB() {
	os.Setenv("TEST_DB", "1")
	if err := database.InitDB(); err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	users := []struct {
		id    string
		name  string
		email string
	}{
		{id: TestUserID, name: "Test User", email: "test@example.com"},
		{id: OtherUserID, name: "Other User", email: "other@example.com"},
	}
	for _, u := range users {
		_, err := database.DB.Exec(`
			INSERT INTO users (id, name, email, password, monthly_budget, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, u.id, u.name, u.email, "not-a-real-hash", 0, now, now)
		if err != nil {
			panic(err)
		}
	}
}

// CleanupTestDB closes the test database connection
func CleanupTestDB() {
	if database.DB != nil {
		database.DB.Close()
	}
}

// SetupTestAuth adds authentication context to the request
func SetupTestAuth(req *http.Request) *http.Request {
	return MockAuthContext(req, TestUserID)
}

// MockAuthContext adds a mock user ID to the request context for testing
func MockAuthContext(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

// NewAuthenticatedRequest creates a new HTTP request with a mock authenticated user
func NewAuthenticatedRequest(method, url string, body interface{}) *http.Request {
	var req *http.Request

	if body != nil {
		buf, _ := json.Marshal(body)
		req = httptest.NewRequest(method, url, bytes.NewBuffer(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	return SetupTestAuth(req)
}

// insertTestRecord writes a record row directly, bypassing the service layer.
func insertTestRecord(t *testing.T, table, userID, title string, amount float64, category string, date time.Time) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := database.DB.Exec(`
		INSERT INTO `+table+` (id, user_id, title, amount, category, description, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, '', ?, ?, ?)
	`, id, userID, title, amount, category, date, now, now)
	if err != nil {
		t.Fatalf("Error inserting test record: %v", err)
	}
	return id
}

// jsonDecode unmarshals a recorded response body into dst.
func jsonDecode(w *httptest.ResponseRecorder, dst interface{}) error {
	return json.NewDecoder(w.Body).Decode(dst)
}
