package services

import (
	"database/sql"
	"strings"
	"time"

	"expensetracker/backend/database"
	"expensetracker/backend/models"

	"github.com/google/uuid"
)

// RecordType describes one of the two transaction domains. Expenses and
// incomes run through identical service code; only the table and the
// valid category set differ.
type RecordType struct {
	Name       string
	Table      string
	Categories []string
}

var (
	ExpenseRecords = RecordType{Name: "Expense", Table: "expenses", Categories: models.ExpenseCategories}
	IncomeRecords  = RecordType{Name: "Income", Table: "incomes", Categories: models.IncomeCategories}
)

const recordColumns = "id, user_id, title, amount, category, description, date, created_at, updated_at"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (models.Record, error) {
	var rec models.Record
	err := s.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Amount, &rec.Category,
		&rec.Description, &rec.Date, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// ListRecords returns all of the user's records, most recent first.
func ListRecords(rt RecordType, userID string) ([]models.Record, error) {
	rows, err := database.DB.Query(
		"SELECT "+recordColumns+" FROM "+rt.Table+" WHERE user_id = ? ORDER BY date DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetRecord fetches a record by id and enforces ownership: a missing row
// yields ErrNotFound regardless of who asks; a row owned by someone else
// yields ErrForbidden.
func GetRecord(rt RecordType, id, userID string) (models.Record, error) {
	row := database.DB.QueryRow("SELECT "+recordColumns+" FROM "+rt.Table+" WHERE id = ?", id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return models.Record{}, ErrNotFound
	}
	if err != nil {
		return models.Record{}, err
	}
	if rec.UserID != userID {
		return models.Record{}, ErrForbidden
	}
	return rec, nil
}

// CreateRecord validates and persists a new record. The owner is always
// the authenticated user; any owner field in the request body is ignored.
func CreateRecord(rt RecordType, userID string, in models.NewRecord) (models.Record, error) {
	missing := []string{}
	if in.Title == nil {
		missing = append(missing, "title")
	}
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	if in.Category == nil {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return models.Record{}, &models.ValidationError{
			Message: "Please provide title, amount, and category",
			Fields:  missing,
		}
	}

	now := time.Now().UTC()
	rec := models.Record{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(*in.Title),
		Amount:      *in.Amount,
		Category:    *in.Category,
		Description: strings.TrimSpace(in.Description),
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Date != nil && !in.Date.IsZero() {
		rec.Date = in.Date.Time
	}

	if err := rec.Validate(rt.Categories); err != nil {
		return models.Record{}, err
	}

	_, err := database.DB.Exec(`
		INSERT INTO `+rt.Table+` (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Title, rec.Amount, rec.Category, rec.Description,
		rec.Date, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return models.Record{}, err
	}

	return rec, nil
}

// UpdateRecord applies a partial update to an owned record. Submitted
// fields are merged onto the stored record and the merged result is
// revalidated in full, so an update can never leave a record violating
// the category or amount constraints.
//
// Two concurrent updates to the same record resolve as last-write-wins;
// there is no optimistic versioning.
func UpdateRecord(rt RecordType, id, userID string, in models.RecordUpdate) (models.Record, error) {
	rec, err := GetRecord(rt, id, userID)
	if err != nil {
		return models.Record{}, err
	}

	if in.Title != nil {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if in.Amount != nil {
		rec.Amount = *in.Amount
	}
	if in.Category != nil {
		rec.Category = *in.Category
	}
	if in.Description != nil {
		rec.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil && !in.Date.IsZero() {
		rec.Date = in.Date.Time
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := rec.Validate(rt.Categories); err != nil {
		return models.Record{}, err
	}

	_, err = database.DB.Exec(`
		UPDATE `+rt.Table+`
		SET title = ?, amount = ?, category = ?, description = ?, date = ?, updated_at = ?
		WHERE id = ?
	`, rec.Title, rec.Amount, rec.Category, rec.Description, rec.Date, rec.UpdatedAt, rec.ID)
	if err != nil {
		return models.Record{}, err
	}

	return rec, nil
}

// DeleteRecord removes an owned record. Deleting an id that is already
// gone yields ErrNotFound.
func DeleteRecord(rt RecordType, id, userID string) error {
	if _, err := GetRecord(rt, id, userID); err != nil {
		return err
	}

	_, err := database.DB.Exec("DELETE FROM "+rt.Table+" WHERE id = ?", id)
	return err
}
