package handlers

import (
	"net/http"
	"strconv"

	"expensetracker/backend/middleware"
	"expensetracker/backend/models"
	"expensetracker/backend/services"

	"github.com/gorilla/mux"
)

// Shared HTTP plumbing for the expense and income resources. The exported
// per-resource handlers in expense.go and income.go delegate here with
// their RecordType.

func listRecords(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)

	records, err := services.ListRecords(rt, userID)
	if err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	respondList(w, records, len(records))
}

func monthlyRecords(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid month")
		return
	}

	summary, err := services.MonthlyRecords(rt, userID, year, month)
	if err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	count := len(summary.Records)
	writeJSON(w, http.StatusOK, response{Success: true, Count: &count, Data: summary})
}

func getRecord(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)
	id := mux.Vars(r)["id"]

	record, err := services.GetRecord(rt, id, userID)
	if err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	respondData(w, http.StatusOK, record, "")
}

func createRecord(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)

	var in models.NewRecord
	if !decodeBody(w, r, &in) {
		return
	}

	record, err := services.CreateRecord(rt, userID, in)
	if err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	respondData(w, http.StatusCreated, record, rt.Name+" created successfully")
}

func updateRecord(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)
	id := mux.Vars(r)["id"]

	var in models.RecordUpdate
	if !decodeBody(w, r, &in) {
		return
	}

	record, err := services.UpdateRecord(rt, id, userID, in)
	if err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	respondData(w, http.StatusOK, record, rt.Name+" updated successfully")
}

func deleteRecord(w http.ResponseWriter, r *http.Request, rt services.RecordType) {
	userID := middleware.GetUserIDFromContext(r)
	id := mux.Vars(r)["id"]

	if err := services.DeleteRecord(rt, id, userID); err != nil {
		respondServiceError(w, err, rt.Name)
		return
	}

	respondData(w, http.StatusOK, struct{}{}, rt.Name+" deleted successfully")
}
