package ledger

import (
	"time"

	"github.com/ebilgin/expense-ledger/infra/db/dao/mocks"
	"github.com/ebilgin/expense-ledger/infra/locker"

	"github.com/golang/mock/gomock"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestUsecase(ctrl *gomock.Controller) (*ledgerUsecase, *mock_dao.MockDaoMethod) {
	mockDao := mock_dao.NewMockDaoMethod(ctrl)
	u := &ledgerUsecase{
		dao:       mockDao,
		locker:    locker.New(),
		uploadDir: "",
		now:       func() time.Time { return testNow },
		sleep:     func(time.Duration) {},
	}
	return u, mockDao
}

// sampleGrid is a representative import grid: a header row, a master row
// carrying its first detail, a trailing detail row, a blank separator and a
// second single-row group.
func sampleGrid() [][]string {
	return [][]string{
		{"Entry Date", "Document No", "Vehicle", "Counterparty", "Description", "Detail Date", "Receipt", "Category", "Detail Description", "Amount"},
		{"01.06.2024", "", "34 AB 123", "Acme Petrol", "Fuel run", "01.06.2024", "R-1", "Fuel", "", "150,75"},
		{"", "", "", "", "", "02.06.2024", "R-2", "Toll", "bridge", "20"},
		{"", "", "", "", "", "", "", "", "", ""},
		{"03.06.2024", "", "", "Garage Ltd", "Service", "03.06.2024", "R-3", "Maintenance", "oil change", "300"},
	}
}

func testRefs() *ReferenceTables {
	return &ReferenceTables{
		vehicles:       map[string]int64{"34 ab 123": 1},
		counterparties: map[string]int64{"acme petrol": 7, "garage ltd": 8},
		categories:     map[string]int64{"fuel": 3, "toll": 4, "maintenance": 5},
	}
}
