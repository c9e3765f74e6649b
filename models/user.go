package models

import "time"

// User is an account that owns expense and income records. The password
// hash never leaves the backend.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	MonthlyBudget float64   `json:"monthlyBudget"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the body for PUT /auth/profile. Only fields present in
// the request are applied.
type ProfileUpdate struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	MonthlyBudget *float64 `json:"monthlyBudget"`
	Password      *string  `json:"password"`
}

// AuthResponse is returned by register, login and profile update. It
// carries a fresh bearer token alongside the public user fields.
type AuthResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	MonthlyBudget float64 `json:"monthlyBudget"`
	Token         string  `json:"token"`
}
