package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
)

type StageImportRequest struct {
	FilePath string `json:"file_path"`
	Operator string `json:"operator"`
}

type CommitImportRequest struct {
	LogID    int64  `json:"log_id"`
	Operator string `json:"operator"`
}

// StageImport validates an uploaded spreadsheet and stages it for review.
func (h *LedgerHandler) StageImport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req StageImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateStageImportRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.Usecase.StageImport(r.Context(), req.FilePath, req.Operator)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{Status: "success", Data: summary})
}

// CommitImport commits a staged batch by log id.
func (h *LedgerHandler) CommitImport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req CommitImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LogID == 0 {
		writeError(w, http.StatusBadRequest, "log_id is required")
		return
	}
	if strings.TrimSpace(req.Operator) == "" {
		writeError(w, http.StatusBadRequest, "operator must be specified")
		return
	}

	result, err := h.Usecase.CommitImport(r.Context(), req.LogID, req.Operator)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{Status: "success", Data: result})
}

func (h *LedgerHandler) GetImportLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logs, err := h.Usecase.GetImportLogs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get import logs")
		return
	}

	json.NewEncoder(w).Encode(APIResponse{Status: "success", Data: logs})
}

func validateStageImportRequest(req StageImportRequest) error {
	if req.FilePath == "" {
		return errors.New("file path is required")
	}
	if _, err := os.Stat(req.FilePath); os.IsNotExist(err) {
		return errors.New("spreadsheet file does not exist")
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIResponse{Status: "error", Message: message})
}
