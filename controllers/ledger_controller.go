package controllers

import (
	"github.com/ebilgin/expense-ledger/handler"

	"github.com/gorilla/mux"
)

func RegisterLedgerRoutes(router *mux.Router, h *handler.LedgerHandler) {
	router.HandleFunc("/import", h.StageImport).Methods("POST")
	router.HandleFunc("/import/commit", h.CommitImport).Methods("POST")
	router.HandleFunc("/import_logs", h.GetImportLogs).Methods("GET")
	router.HandleFunc("/entries", h.GetEntries).Methods("GET")
	router.HandleFunc("/entries/{id}", h.SaveEntry).Methods("PUT")
	router.HandleFunc("/entries/{id}", h.DeleteEntry).Methods("DELETE")
	router.HandleFunc("/template", h.GetTemplate).Methods("GET")
}
