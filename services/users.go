package services

import (
	"database/sql"
	"time"

	"expensetracker/backend/database"
	"expensetracker/backend/models"

	"github.com/google/uuid"
)

const userColumns = "id, name, email, password, monthly_budget, created_at, updated_at"

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.MonthlyBudget, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser inserts a new account. The password must already be hashed.
func CreateUser(name, email, hashedPassword string) (models.User, error) {
	var exists bool
	err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email).Scan(&exists)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = database.DB.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, user.ID, user.Name, user.Email, user.Password, user.MonthlyBudget, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmail looks an account up for login.
func GetUserByEmail(email string) (models.User, error) {
	row := database.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// GetUserByID resolves the authenticated user from a verified token subject.
func GetUserByID(id string) (models.User, error) {
	row := database.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// UpdateUser persists profile changes for an existing account.
func UpdateUser(user models.User) error {
	user.UpdatedAt = time.Now().UTC()
	_, err := database.DB.Exec(`
		UPDATE users
		SET name = ?, email = ?, password = ?, monthly_budget = ?, updated_at = ?
		WHERE id = ?
	`, user.Name, user.Email, user.Password, user.MonthlyBudget, user.UpdatedAt, user.ID)
	return err
}
