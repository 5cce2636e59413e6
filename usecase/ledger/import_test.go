package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/infra/db/dao/mocks"
	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, grid [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range grid {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &cells))
	}

	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func expectReferenceTables(mockDao *mock_dao.MockDaoMethod, times int) {
	mockDao.EXPECT().GetVehicles().Return([]model.Vehicle{
		{ID: 1, PlateNo: "34 AB 123"},
	}, nil).Times(times)
	mockDao.EXPECT().GetCounterparties().Return([]model.Counterparty{
		{ID: 7, Name: "Acme Petrol"},
		{ID: 8, Name: "Garage Ltd"},
	}, nil).Times(times)
	mockDao.EXPECT().GetExpenseCategories().Return([]model.ExpenseCategory{
		{ID: 3, Name: "Fuel"},
		{ID: 4, Name: "Toll"},
		{ID: 5, Name: "Maintenance"},
	}, nil).Times(times)
}

func TestStageThenCommitImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)
	u.uploadDir = t.TempDir()

	source := writeWorkbook(t, sampleGrid())

	expectReferenceTables(mockDao, 2)

	var stagedLog model.ImportBatchLog
	mockDao.EXPECT().CreateImportBatchLog(gomock.Any()).DoAndReturn(func(l *model.ImportBatchLog) error {
		l.ID = 42
		stagedLog = *l
		return nil
	})

	summary, err := u.StageImport(context.Background(), source, "tester")

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.LogID)
	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 2, summary.GroupCount)
	assert.Equal(t, 2, summary.ValidGroups)
	assert.Empty(t, summary.Errors)
	assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("470.75")),
		"total %s", summary.TotalAmount)

	assert.Equal(t, consts.ImportStatusStaged, stagedLog.Status)
	assert.Equal(t, "expenses.xlsx", stagedLog.FileName)
	assert.Equal(t, int64(2), stagedLog.TotalGroups)

	// Commit re-reads the stored copy and allocates numbers in order.
	mockDao.EXPECT().GetImportBatchLogByID(int64(42)).Return(stagedLog, nil)
	gomock.InOrder(
		mockDao.EXPECT().GetMaxDocumentNumber("KHT-20240601").Return("", nil),
		mockDao.EXPECT().CreateExpenseEntry(gomock.Any()).DoAndReturn(func(e *model.ExpenseEntry) error {
			assert.Equal(t, "KHT-202406010001", e.DocumentNumber)
			e.ID = 1
			return nil
		}),
		mockDao.EXPECT().CreateExpenseDetail(gomock.Any()).Return(nil).Times(2),
		mockDao.EXPECT().GetMaxDocumentNumber("KHT-20240601").Return("KHT-202406010001", nil),
		mockDao.EXPECT().CreateExpenseEntry(gomock.Any()).DoAndReturn(func(e *model.ExpenseEntry) error {
			assert.Equal(t, "KHT-202406010002", e.DocumentNumber)
			e.ID = 2
			return nil
		}),
		mockDao.EXPECT().CreateExpenseDetail(gomock.Any()).Return(nil),
	)
	mockDao.EXPECT().UpdateImportBatchLog(gomock.Any()).DoAndReturn(func(l model.ImportBatchLog) error {
		assert.Equal(t, consts.ImportStatusCommitted, l.Status)
		assert.Equal(t, int64(2), l.CommittedGroups)
		return nil
	})

	result, err := u.CommitImport(context.Background(), 42, "tester")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Empty(t, result.Failures)
}

func TestStageImportCollectsRowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)
	u.uploadDir = t.TempDir()

	grid := sampleGrid()
	grid[4][2] = "99 ZZ 999" // unknown vehicle poisons the second group
	source := writeWorkbook(t, grid)

	expectReferenceTables(mockDao, 1)
	mockDao.EXPECT().CreateImportBatchLog(gomock.Any()).DoAndReturn(func(l *model.ImportBatchLog) error {
		l.ID = 43
		return nil
	})

	summary, err := u.StageImport(context.Background(), source, "tester")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.GroupCount)
	assert.Equal(t, 1, summary.ValidGroups)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 5, summary.Errors[0].Row)
	// Only valid groups count toward the review total.
	assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("170.75")),
		"total %s", summary.TotalAmount)
}
