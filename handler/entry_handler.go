package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ebilgin/expense-ledger/entity"

	"github.com/gorilla/mux"
)

func (h *LedgerHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.Usecase.GetEntries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get entries")
		return
	}

	json.NewEncoder(w).Encode(APIResponse{Status: "success", Data: entries})
}

type SaveEntryBody struct {
	entity.SaveEntryRequest
	Operator string `json:"operator"`
}

// SaveEntry applies an edited detail list to an existing entry.
func (h *LedgerHandler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a valid integer")
		return
	}

	var body SaveEntryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Operator) == "" {
		writeError(w, http.StatusBadRequest, "operator must be specified")
		return
	}
	body.SaveEntryRequest.ID = entryID

	entry, err := h.Usecase.SaveEntry(r.Context(), body.SaveEntryRequest, body.Operator)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(APIResponse{Status: "success", Data: entry})
}

// DeleteEntry removes an entry and its details.
func (h *LedgerHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a valid integer")
		return
	}
	operator := r.URL.Query().Get("operator")
	if strings.TrimSpace(operator) == "" {
		writeError(w, http.StatusBadRequest, "operator must be specified")
		return
	}

	if err := h.Usecase.DeleteEntry(r.Context(), entryID, operator); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(APIResponse{Status: "success"})
}
