package services

import (
	"time"

	"expensetracker/backend/database"
	"expensetracker/backend/models"
)

// MonthlySummary is the aggregate for one owner, year and month: the
// matching records (most recent first), their total, and per-category
// subtotals for the categories that actually occur.
type MonthlySummary struct {
	Records    []models.Record    `json:"records"`
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory"`
}

// MonthRange returns the inclusive bounds of a calendar month: the first
// instant of (year, month) and the final second of its last day. The end
// bound is built as day 0 of the following month, which time.Date
// normalizes to the last day of the target month, so February and
// December need no special cases.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)
	return start, end
}

// MonthlyRecords computes the monthly aggregate for one user. An empty
// month is a valid result: zero total, no categories, empty record list.
func MonthlyRecords(rt RecordType, userID string, year, month int) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, &models.ValidationError{
			Message: "Month must be between 1 and 12",
			Fields:  []string{"month"},
		}
	}

	start, end := MonthRange(year, month)
	rows, err := database.DB.Query(
		"SELECT "+recordColumns+" FROM "+rt.Table+" WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date DESC",
		userID, start, end)
	if err != nil {
		return MonthlySummary{}, err
	}
	defer rows.Close()

	summary := MonthlySummary{
		Records:    []models.Record{},
		ByCategory: map[string]float64{},
	}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return MonthlySummary{}, err
		}
		summary.Records = append(summary.Records, rec)
		summary.Total += rec.Amount
		summary.ByCategory[rec.Category] += rec.Amount
	}
	return summary, rows.Err()
}
