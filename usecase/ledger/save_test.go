package ledger

import (
	"context"
	"testing"

	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveEntryAppliesPlanAndRecomputesTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)

	req := entity.SaveEntryRequest{
		ID:          5,
		EntryDate:   testNow,
		Description: "edited",
		Details: []entity.DetailEdit{
			{ID: 0, State: entity.DetailStateNew, DetailDate: testNow, CategoryID: 3, Amount: decimal.RequireFromString("30")},
			{ID: 11, State: entity.DetailStateKept, DetailDate: testNow, CategoryID: 4, Amount: decimal.RequireFromString("45.50")},
			{ID: 12, State: entity.DetailStatePendingDelete},
		},
	}

	gomock.InOrder(
		mockDao.EXPECT().GetExpenseEntryByID(int64(5)).Return(model.ExpenseEntry{
			ID:             5,
			DocumentNumber: "KHT-202406010005",
		}, nil),
		mockDao.EXPECT().DeleteExpenseDetail(int64(12)).Return(nil),
		mockDao.EXPECT().CreateExpenseDetail(gomock.Any()).DoAndReturn(func(d *model.ExpenseDetail) error {
			assert.Equal(t, int64(5), d.ExpenseEntryID)
			assert.Equal(t, int64(3), d.CategoryID)
			return nil
		}),
		mockDao.EXPECT().UpdateExpenseDetail(gomock.Any()).DoAndReturn(func(d model.ExpenseDetail) error {
			assert.Equal(t, int64(11), d.ID)
			return nil
		}),
		mockDao.EXPECT().GetExpenseDetailsByEntryID(int64(5)).Return([]model.ExpenseDetail{
			{ID: 11, Amount: decimal.RequireFromString("45.50")},
			{ID: 14, Amount: decimal.RequireFromString("30")},
		}, nil),
		mockDao.EXPECT().UpdateExpenseEntry(gomock.Any()).DoAndReturn(func(e model.ExpenseEntry) error {
			assert.True(t, e.TotalAmount.Equal(decimal.RequireFromString("75.50")), "total %s", e.TotalAmount)
			assert.Equal(t, "edited", e.Description)
			assert.Equal(t, "tester", e.UpdateBy)
			return nil
		}),
	)

	entry, err := u.SaveEntry(context.Background(), req, "tester")

	require.NoError(t, err)
	assert.Equal(t, "KHT-202406010005", entry.DocumentNumber)
	assert.True(t, entry.TotalAmount.Equal(decimal.RequireFromString("75.50")))
}

func TestSaveEntryRejectsInvalidEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)

	mockDao.EXPECT().GetExpenseEntryByID(int64(5)).Return(model.ExpenseEntry{ID: 5}, nil)

	req := entity.SaveEntryRequest{
		ID:        5,
		EntryDate: testNow,
		Details: []entity.DetailEdit{
			{ID: 0, State: entity.DetailStateNew, DetailDate: testNow, CategoryID: 0, Amount: decimal.RequireFromString("10")},
		},
	}

	_, err := u.SaveEntry(context.Background(), req, "tester")

	assert.ErrorIs(t, err, entity.ErrReferenceNotFound)
}

func TestDeleteEntryCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)

	gomock.InOrder(
		mockDao.EXPECT().GetExpenseEntryByID(int64(9)).Return(model.ExpenseEntry{
			ID:             9,
			DocumentNumber: "KHT-202406010009",
		}, nil),
		mockDao.EXPECT().DeleteExpenseEntry(int64(9)).Return(nil),
	)

	assert.NoError(t, u.DeleteEntry(context.Background(), 9, "tester"))
}

func TestSaveEntryDocumentNumberImmutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	u, mockDao := newTestUsecase(ctrl)

	gomock.InOrder(
		mockDao.EXPECT().GetExpenseEntryByID(int64(5)).Return(model.ExpenseEntry{
			ID:             5,
			DocumentNumber: "KHT-202406010005",
		}, nil),
		mockDao.EXPECT().GetExpenseDetailsByEntryID(int64(5)).Return(nil, nil),
		mockDao.EXPECT().UpdateExpenseEntry(gomock.Any()).DoAndReturn(func(e model.ExpenseEntry) error {
			assert.Equal(t, "KHT-202406010005", e.DocumentNumber)
			return nil
		}),
	)

	_, err := u.SaveEntry(context.Background(), entity.SaveEntryRequest{ID: 5, EntryDate: testNow}, "tester")
	assert.NoError(t, err)
}
