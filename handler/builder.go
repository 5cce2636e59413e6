package handler

import (
	usecase "github.com/ebilgin/expense-ledger/usecase/ledger"
)

type LedgerHandler struct {
	Usecase usecase.LedgerUsecase
}

func NewLedgerHandler(uc usecase.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
