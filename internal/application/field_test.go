package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupFieldServiceMocks(t *testing.T) (*FieldService, *mock_repository.MockCollectionRepo, *mock_repository.MockFieldRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockCollection := mock_repository.NewMockCollectionRepo(ctrl)
	mockField := mock_repository.NewMockFieldRepo(ctrl)
	repos := &repository.Repos{
		Collection: mockCollection,
		Field:      mockField,
	}
	svc := NewFieldService(repos)
	return svc, mockCollection, mockField
}

func expectOwnedCollection(mockCollection *mock_repository.MockCollectionRepo, collectionID, ownerID uint) {
	mockCollection.EXPECT().GetForOwner(collectionID, ownerID).Return(collection.Collection{ID: collectionID, OwnerID: ownerID}, nil)
}

// --------------------- Create ---------------------
func TestCreateField_AppendsAtEnd(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)
	mockField.EXPECT().NameExists(uint(9), "Maker", uint(0)).Return(false, nil)
	mockField.EXPECT().MaxPosition(uint(9)).Return(3, nil)
	mockField.EXPECT().Create(gomock.Any()).DoAndReturn(func(def *field.Definition) error {
		def.ID = 11
		return nil
	})

	def, err := svc.Create(1, 9, field.CreateFieldInput{Name: "Maker", FieldType: field.TypeText})
	assert.NoError(t, err)
	assert.Equal(t, 4, def.Position)
	assert.Equal(t, uint(9), def.CollectionID)
}

func TestCreateField_UnknownType(t *testing.T) {
	svc, mockCollection, _ := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)

	_, err := svc.Create(1, 9, field.CreateFieldInput{Name: "Maker", FieldType: "dropdown"})
	assert.Equal(t, ErrUnknownFieldType, err)
}

func TestCreateField_SelectNeedsOptions(t *testing.T) {
	svc, mockCollection, _ := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)

	_, err := svc.Create(1, 9, field.CreateFieldInput{Name: "Condition", FieldType: field.TypeSelect})
	assert.Equal(t, ErrOptionsRequired, err)
}

func TestCreateField_OptionsOnlyForSelect(t *testing.T) {
	svc, mockCollection, _ := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)

	_, err := svc.Create(1, 9, field.CreateFieldInput{
		Name:      "Maker",
		FieldType: field.TypeText,
		Options:   []string{"Mint"},
	})
	assert.Equal(t, ErrOptionsNotAllowed, err)
}

func TestCreateField_NameTaken(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)
	mockField.EXPECT().NameExists(uint(9), "Maker", uint(0)).Return(true, nil)

	_, err := svc.Create(1, 9, field.CreateFieldInput{Name: "Maker", FieldType: field.TypeText})
	assert.Equal(t, ErrFieldNameTaken, err)
}

// --------------------- ListVisible ---------------------
func TestListVisible_HidesPrivateFieldsForVisitors(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	mockCollection.EXPECT().GetByID(uint(9)).Return(collection.Collection{ID: 9, OwnerID: 2, IsPublic: true}, nil)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{
		{ID: 1, Name: "Maker"},
		{ID: 2, Name: "Paid", IsPrivate: true},
	}, nil)

	defs, err := svc.ListVisible(1, 9)
	assert.NoError(t, err)
	assert.Len(t, defs, 1)
	assert.Equal(t, "Maker", defs[0].Name)
}

func TestListVisible_OwnerSeesEverything(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	mockCollection.EXPECT().GetByID(uint(9)).Return(collection.Collection{ID: 9, OwnerID: 1}, nil)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{
		{ID: 1, Name: "Maker"},
		{ID: 2, Name: "Paid", IsPrivate: true},
	}, nil)

	defs, err := svc.ListVisible(1, 9)
	assert.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestListVisible_PrivateCollectionOfAnotherUser(t *testing.T) {
	svc, mockCollection, _ := setupFieldServiceMocks(t)

	mockCollection.EXPECT().GetByID(uint(9)).Return(collection.Collection{ID: 9, OwnerID: 2, IsPublic: false}, nil)

	_, err := svc.ListVisible(1, 9)
	assert.Equal(t, ErrCollectionNotFound, err)
}

// --------------------- Reorder ---------------------
func TestReorderFields_Success(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	defs := []field.Definition{{ID: 1}, {ID: 2}, {ID: 3}}
	expectOwnedCollection(mockCollection, 9, 1)
	mockField.EXPECT().ListByCollection(uint(9)).Return(defs, nil)
	mockField.EXPECT().UpdatePositions(uint(9), []uint{3, 1, 2}).Return(nil)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{{ID: 3}, {ID: 1}, {ID: 2}}, nil)

	got, err := svc.Reorder(1, 9, []uint{3, 1, 2})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestReorderFields_IncompletePermutation(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	_, err := svc.Reorder(1, 9, []uint{3, 1})
	assert.Equal(t, ErrReorderIncomplete, err)
}

func TestReorderFields_DuplicateID(t *testing.T) {
	svc, mockCollection, mockField := setupFieldServiceMocks(t)

	expectOwnedCollection(mockCollection, 9, 1)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	_, err := svc.Reorder(1, 9, []uint{1, 1, 2})
	assert.Equal(t, ErrReorderIncomplete, err)
}
