package models

import (
	"strings"
	"time"
)

// ExpenseCategories is the fixed set of categories accepted for expenses.
var ExpenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Housing",
	"Personal Care",
	"Other",
}

// IncomeCategories is the fixed set of categories accepted for incomes.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Business",
	"Investment",
	"Rental",
	"Gift",
	"Other",
}

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Record is a single expense or income entry. Expenses and incomes share
// the same shape and differ only in which category set is valid.
type Record struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewRecord is the request body for creating a record. Pointer fields
// distinguish "absent" from zero values so that an explicit amount of 0
// passes the required-field check.
type NewRecord struct {
	Title       *string   `json:"title"`
	Amount      *float64  `json:"amount"`
	Category    *string   `json:"category"`
	Description string    `json:"description"`
	Date        *DateTime `json:"date"`
}

// RecordUpdate lists exactly the mutable fields of a record. Only fields
// present in the request body are applied; id and userId can never change.
type RecordUpdate struct {
	Title       *string   `json:"title"`
	Amount      *float64  `json:"amount"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Date        *DateTime `json:"date"`
}

// ValidationError reports missing or invalid fields on a create or update.
type ValidationError struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the record's constraints against the given category set.
// It is run on fully merged records, not just on submitted fields.
func (r Record) Validate(categories []string) error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Message: "Title cannot be empty", Fields: []string{"title"}}
	}
	if len(r.Title) > MaxTitleLength {
		return &ValidationError{Message: "Title cannot be more than 100 characters", Fields: []string{"title"}}
	}
	if r.Amount < 0 {
		return &ValidationError{Message: "Amount cannot be negative", Fields: []string{"amount"}}
	}
	if !containsCategory(categories, r.Category) {
		return &ValidationError{Message: "Invalid category: " + r.Category, Fields: []string{"category"}}
	}
	if len(r.Description) > MaxDescriptionLength {
		return &ValidationError{Message: "Description cannot be more than 500 characters", Fields: []string{"description"}}
	}
	return nil
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
