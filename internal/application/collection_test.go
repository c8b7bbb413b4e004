package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupCollectionServiceMocks(t *testing.T) (*CollectionService, *mock_repository.MockCollectionRepo, *mock_repository.MockItemRepo, *mock_repository.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockCollection := mock_repository.NewMockCollectionRepo(ctrl)
	mockItem := mock_repository.NewMockItemRepo(ctrl)
	mockActivity := mock_repository.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		Collection: mockCollection,
		Item:       mockItem,
		Activity:   mockActivity,
	}
	svc := NewCollectionService(repos, NewActivityService(repos))
	return svc, mockCollection, mockItem, mockActivity
}

// --------------------- GetVisible ---------------------
func TestGetVisible_PublicCollectionForAnonymous(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetByID(uint(9)).Return(collection.Collection{ID: 9, OwnerID: 2, IsPublic: true}, nil)

	col, err := svc.GetVisible(0, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), col.ID)
}

func TestGetVisible_PrivateCollectionHiddenFromOthers(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetByID(uint(9)).Return(collection.Collection{ID: 9, OwnerID: 2, IsPublic: false}, nil)

	_, err := svc.GetVisible(1, 9)
	assert.Equal(t, ErrCollectionNotFound, err)
}

// --------------------- Update ---------------------
func TestUpdateCollection_PartialPatch(t *testing.T) {
	svc, mockCollection, _, mockActivity := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{ID: 9, OwnerID: 1, Name: "Clocks"}, nil)
	mockCollection.EXPECT().Save(gomock.Any()).Return(nil)
	expectActivityRecord(mockActivity, 1)

	public := true
	col, err := svc.Update(1, 9, collection.UpdateCollectionInput{IsPublic: &public})
	assert.NoError(t, err)
	assert.Equal(t, "Clocks", col.Name)
	assert.True(t, col.IsPublic)
}

func TestUpdateCollection_NotOwned(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(1, 9, collection.UpdateCollectionInput{})
	assert.Equal(t, ErrCollectionNotFound, err)
}

// --------------------- Delete ---------------------
func TestDeleteCollection_RecordsActivity(t *testing.T) {
	svc, mockCollection, _, mockActivity := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{ID: 9, OwnerID: 1, Name: "Clocks"}, nil)
	mockCollection.EXPECT().Delete(uint(9)).Return(nil)

	expectActivityRecord(mockActivity, 1)

	assert.NoError(t, svc.Delete(1, 9))
}

// --------------------- Featured ---------------------
func TestFeatured_NilWhenUnset(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetFeatured().Return(collection.WithCounts{}, gorm.ErrRecordNotFound)

	col, err := svc.Featured()
	assert.NoError(t, err)
	assert.Nil(t, col)
}

func TestFeatured_ReturnsCollection(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetFeatured().Return(collection.WithCounts{
		Collection: collection.Collection{ID: 3, IsFeatured: true, IsPublic: true},
		ItemCount:  12,
	}, nil)

	col, err := svc.Featured()
	assert.NoError(t, err)
	if assert.NotNil(t, col) {
		assert.Equal(t, uint(3), col.ID)
		assert.Equal(t, int64(12), col.ItemCount)
	}
}

func TestFeaturedItems_EmptyWhenUnset(t *testing.T) {
	svc, mockCollection, _, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetFeatured().Return(collection.WithCounts{}, gorm.ErrRecordNotFound)

	items, err := svc.FeaturedItems()
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFeaturedItems_ListsCuratedSet(t *testing.T) {
	svc, mockCollection, mockItem, _ := setupCollectionServiceMocks(t)

	mockCollection.EXPECT().GetFeatured().Return(collection.WithCounts{
		Collection: collection.Collection{ID: 3, IsFeatured: true},
	}, nil)
	mockItem.EXPECT().ListFeatured().Return([]item.SearchResult{{Item: item.Item{ID: 42}}}, nil)

	items, err := svc.FeaturedItems()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
