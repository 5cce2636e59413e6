package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/handler"
	"github.com/ebilgin/expense-ledger/infra/db/dao"
	"github.com/ebilgin/expense-ledger/infra/db/model"
	"github.com/ebilgin/expense-ledger/infra/locker"
	ledgerUsecase "github.com/ebilgin/expense-ledger/usecase/ledger"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("cannot connect to database %s: %v", DbName, err)
	}

	a.DB.AutoMigrate(
		&model.ExpenseEntry{},
		&model.ExpenseDetail{},
		&model.Vehicle{},
		&model.Counterparty{},
		&model.ExpenseCategory{},
		&model.ImportBatchLog{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	daoMethod := dao.NewDaoMethod(a.DB)
	uc := ledgerUsecase.NewLedgerUsecase(daoMethod, locker.New(), consts.DefaultUploadDir)
	h := handler.NewLedgerHandler(uc)
	RegisterLedgerRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
