package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/activity"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupActivityServiceMocks(t *testing.T) (*ActivityService, *mock_repository.MockActivityRepo, *mock_repository.MockItemRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockActivity := mock_repository.NewMockActivityRepo(ctrl)
	mockItem := mock_repository.NewMockItemRepo(ctrl)
	repos := &repository.Repos{
		Activity: mockActivity,
		Item:     mockItem,
	}
	svc := NewActivityService(repos)
	return svc, mockActivity, mockItem
}

func ptrUint(v uint) *uint { return &v }

// --------------------- Record ---------------------
func TestRecord_PrunesOverflow(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().Create(gomock.Any()).DoAndReturn(func(l *activity.Log) error {
		l.ID = 101
		return nil
	})
	mockActivity.EXPECT().OverflowIDs(uint(1), config.MaxActivityLogs).Return([]uint{1, 2}, nil)
	mockActivity.EXPECT().DeleteByIDs([]uint{1, 2}).Return(nil)

	svc.Record(1, "collection.created", "collection", ptrUint(9), `Created collection "Clocks"`)
}

func TestRecord_CreateFailureSkipsPrune(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().Create(gomock.Any()).Return(gorm.ErrInvalidData)

	svc.Record(1, "collection.created", "collection", nil, "Created collection")
}

// --------------------- ListByUser ---------------------
func TestListByUser_DefaultLimit(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), 5).Return(nil, nil)

	entries, err := svc.ListByUser(1, 0)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListByUser_LimitClamped(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), config.MaxActivityLogs).Return(nil, nil)

	_, err := svc.ListByUser(1, 5000)
	assert.NoError(t, err)
}

func TestListByUser_CollectionTargetPath(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), 5).Return([]activity.Log{
		{ID: 1, UserID: 1, ActionType: "collection.created", ResourceType: "collection", ResourceID: ptrUint(9)},
	}, nil)

	entries, err := svc.ListByUser(1, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	if assert.NotNil(t, entries[0].TargetPath) {
		assert.Equal(t, "/collections/9", *entries[0].TargetPath)
	}
}

func TestListByUser_ItemCreatedTargetPath(t *testing.T) {
	svc, mockActivity, mockItem := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), 5).Return([]activity.Log{
		{ID: 1, UserID: 1, ActionType: "item.created", ResourceType: "item", ResourceID: ptrUint(42)},
	}, nil)
	mockItem.EXPECT().GetByID(uint(42)).Return(item.Item{ID: 42, CollectionID: 9}, nil)

	entries, err := svc.ListByUser(1, 0)
	assert.NoError(t, err)
	if assert.NotNil(t, entries[0].TargetPath) {
		assert.Equal(t, "/collections/9/items/42", *entries[0].TargetPath)
	}
}

func TestListByUser_DeletedItemHasNoTargetPath(t *testing.T) {
	svc, mockActivity, mockItem := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), 5).Return([]activity.Log{
		{ID: 1, UserID: 1, ActionType: "item.created", ResourceType: "item", ResourceID: ptrUint(42)},
	}, nil)
	mockItem.EXPECT().GetByID(uint(42)).Return(item.Item{}, gorm.ErrRecordNotFound)

	entries, err := svc.ListByUser(1, 0)
	assert.NoError(t, err)
	assert.Nil(t, entries[0].TargetPath)
}

func TestListByUser_UpdatedItemHasNoTargetPath(t *testing.T) {
	svc, mockActivity, _ := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser(uint(1), 5).Return([]activity.Log{
		{ID: 1, UserID: 1, ActionType: "item.updated", ResourceType: "item", ResourceID: ptrUint(42)},
	}, nil)

	entries, err := svc.ListByUser(1, 0)
	assert.NoError(t, err)
	assert.Nil(t, entries[0].TargetPath)
}
