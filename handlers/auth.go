package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"expensetracker/backend/middleware"
	"expensetracker/backend/models"
	"expensetracker/backend/security"
	"expensetracker/backend/services"
)

func authResponse(user models.User) (models.AuthResponse, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		MonthlyBudget: user.MonthlyBudget,
		Token:         token,
	}, nil
}

// RegisterUser creates an account and returns it with a bearer token.
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	user, err := services.CreateUser(req.Name, req.Email, hashed)
	if errors.Is(err, services.ErrEmailTaken) {
		respondError(w, http.StatusBadRequest, "User already exists with this email")
		return
	}
	if err != nil {
		log.Printf("Error creating user: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	resp, err := authResponse(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(w, http.StatusCreated, resp, "User registered successfully")
}

// LoginUser authenticates an email/password pair and returns a bearer token.
func LoginUser(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := services.GetUserByEmail(req.Email)
	if errors.Is(err, services.ErrNotFound) || (err == nil && !security.CheckPassword(user.Password, req.Password)) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	resp, err := authResponse(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(w, http.StatusOK, resp, "Login successful")
}

// GetMe returns the current authenticated user.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)

	user, err := services.GetUserByID(userID)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(w, http.StatusOK, user, "")
}

// UpdateProfile applies a partial update to the current user's profile and
// returns a fresh token alongside the updated fields.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)

	var req models.ProfileUpdate
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := services.GetUserByID(userID)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.MonthlyBudget != nil {
		user.MonthlyBudget = *req.MonthlyBudget
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			respondError(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
		user.Password = hashed
	}

	if err := services.UpdateUser(user); err != nil {
		log.Printf("Error updating user: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	resp, err := authResponse(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(w, http.StatusOK, resp, "Profile updated successfully")
}
