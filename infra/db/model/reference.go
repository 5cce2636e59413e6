package model

// Small reference tables resolved by name during import. Loaded once per
// import session, never mutated by this service.

type Vehicle struct {
	ID          int64  `gorm:"primary_key;auto_increment" json:"id"`
	PlateNo     string `gorm:"size:20;not null;unique_index" json:"plate_no"`
	Description string `gorm:"size:255" json:"description"`
}

type Counterparty struct {
	ID   int64  `gorm:"primary_key;auto_increment" json:"id"`
	Name string `gorm:"size:100;not null;unique_index" json:"name"`
}

type ExpenseCategory struct {
	ID   int64  `gorm:"primary_key;auto_increment" json:"id"`
	Name string `gorm:"size:100;not null;unique_index" json:"name"`
}
