package handlers

import (
	"net/http"

	"expensetracker/backend/services"
)

// GetExpenses returns all expenses for the logged in user, most recent first.
func GetExpenses(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, services.ExpenseRecords)
}

// GetMonthlyExpenses returns the monthly aggregate (records, total, byCategory).
func GetMonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	monthlyRecords(w, r, services.ExpenseRecords)
}

// GetExpense returns a single owned expense by id.
func GetExpense(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, services.ExpenseRecords)
}

// CreateExpense records a new expense owned by the requester.
func CreateExpense(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, services.ExpenseRecords)
}

// UpdateExpense applies a partial update to an owned expense.
func UpdateExpense(w http.ResponseWriter, r *http.Request) {
	updateRecord(w, r, services.ExpenseRecords)
}

// DeleteExpense removes an owned expense.
func DeleteExpense(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, services.ExpenseRecords)
}
