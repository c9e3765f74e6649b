package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validExpense() Record {
	return Record{
		Title:    "Groceries",
		Amount:   42.50,
		Category: "Food & Dining",
		Date:     time.Now().UTC(),
	}
}

func TestRecordValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*Record)
		categories    []string
		expectedField string
	}{
		{
			name:       "Valid expense",
			mutate:     func(r *Record) {},
			categories: ExpenseCategories,
		},
		{
			name:          "Empty title",
			mutate:        func(r *Record) { r.Title = "" },
			categories:    ExpenseCategories,
			expectedField: "title",
		},
		{
			name:          "Whitespace-only title",
			mutate:        func(r *Record) { r.Title = "   " },
			categories:    ExpenseCategories,
			expectedField: "title",
		},
		{
			name:          "Title too long",
			mutate:        func(r *Record) { r.Title = strings.Repeat("a", MaxTitleLength+1) },
			categories:    ExpenseCategories,
			expectedField: "title",
		},
		{
			name:       "Title at the limit",
			mutate:     func(r *Record) { r.Title = strings.Repeat("a", MaxTitleLength) },
			categories: ExpenseCategories,
		},
		{
			name:          "Negative amount",
			mutate:        func(r *Record) { r.Amount = -1 },
			categories:    ExpenseCategories,
			expectedField: "amount",
		},
		{
			name:       "Zero amount",
			mutate:     func(r *Record) { r.Amount = 0 },
			categories: ExpenseCategories,
		},
		{
			name:          "Income category on an expense",
			mutate:        func(r *Record) { r.Category = "Salary" },
			categories:    ExpenseCategories,
			expectedField: "category",
		},
		{
			name:       "Income category on an income",
			mutate:     func(r *Record) { r.Category = "Salary" },
			categories: IncomeCategories,
		},
		{
			name:          "Expense category on an income",
			mutate:        func(r *Record) { r.Category = "Housing" },
			categories:    IncomeCategories,
			expectedField: "category",
		},
		{
			name:          "Unknown category",
			mutate:        func(r *Record) { r.Category = "Lottery" },
			categories:    ExpenseCategories,
			expectedField: "category",
		},
		{
			name:          "Description too long",
			mutate:        func(r *Record) { r.Description = strings.Repeat("d", MaxDescriptionLength+1) },
			categories:    ExpenseCategories,
			expectedField: "description",
		},
		{
			name:       "Description at the limit",
			mutate:     func(r *Record) { r.Description = strings.Repeat("d", MaxDescriptionLength) },
			categories: ExpenseCategories,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validExpense()
			tc.mutate(&rec)

			err := rec.Validate(tc.categories)

			if tc.expectedField == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Expected a ValidationError, got %v", err)
			}
			if len(ve.Fields) != 1 || ve.Fields[0] != tc.expectedField {
				t.Errorf("Expected field '%s', got %v", tc.expectedField, ve.Fields)
			}
		})
	}
}

func TestDateTimeUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC3339",
			input:    `"2024-03-15T10:30:00Z"`,
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with offset",
			input:    `"2024-03-15T10:30:00+02:00"`,
			expected: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "Without timezone",
			input:    `"2024-03-15T10:30:00"`,
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "Date only",
			input:    `"2024-03-15"`,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateTime
			if err := json.Unmarshal([]byte(tc.input), &d); err != nil {
				t.Fatalf("Error unmarshaling %s: %v", tc.input, err)
			}
			if !d.Time.Equal(tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, d.Time)
			}
		})
	}
}

func TestDateTimeUnmarshal_InvalidFormat(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"15/03/2024"`), &d); err == nil {
		t.Error("Expected an error for an unsupported date format")
	}
}

func TestDateTimeMarshal(t *testing.T) {
	d := DateTime{Time: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Error marshaling: %v", err)
	}
	if string(out) != `"2024-03-15T10:30:00Z"` {
		t.Errorf("Unexpected output: %s", out)
	}
}
