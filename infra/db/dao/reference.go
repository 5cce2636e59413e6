package dao

import (
	"github.com/ebilgin/expense-ledger/infra/db/model"
)

func (d *dao) GetVehicles() ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := d.db.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (d *dao) GetCounterparties() ([]model.Counterparty, error) {
	var counterparties []model.Counterparty
	if err := d.db.Find(&counterparties).Error; err != nil {
		return nil, err
	}
	return counterparties, nil
}

func (d *dao) GetExpenseCategories() ([]model.ExpenseCategory, error) {
	var categories []model.ExpenseCategory
	if err := d.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
