package handlers

import (
	"net/http"

	"expensetracker/backend/services"
)

// GetIncomes returns all incomes for the logged in user, most recent first.
func GetIncomes(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, services.IncomeRecords)
}

// GetMonthlyIncomes returns the monthly aggregate (records, total, byCategory).
func GetMonthlyIncomes(w http.ResponseWriter, r *http.Request) {
	monthlyRecords(w, r, services.IncomeRecords)
}

// GetIncome returns a single owned income by id.
func GetIncome(w http.ResponseWriter, r *http.Request) {
	getRecord(w, r, services.IncomeRecords)
}

// CreateIncome records a new income owned by the requester.
func CreateIncome(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, services.IncomeRecords)
}

// UpdateIncome applies a partial update to an owned income.
func UpdateIncome(w http.ResponseWriter, r *http.Request) {
	updateRecord(w, r, services.IncomeRecords)
}

// DeleteIncome removes an owned income.
func DeleteIncome(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, services.IncomeRecords)
}
