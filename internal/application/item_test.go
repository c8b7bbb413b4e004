package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupItemServiceMocks(t *testing.T) (*ItemService, *mock_repository.MockCollectionRepo, *mock_repository.MockItemRepo, *mock_repository.MockFieldRepo, *mock_repository.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockCollection := mock_repository.NewMockCollectionRepo(ctrl)
	mockItem := mock_repository.NewMockItemRepo(ctrl)
	mockField := mock_repository.NewMockFieldRepo(ctrl)
	mockActivity := mock_repository.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		Collection: mockCollection,
		Item:       mockItem,
		Field:      mockField,
		Activity:   mockActivity,
	}
	svc := NewItemService(repos, NewActivityService(repos))
	return svc, mockCollection, mockItem, mockField, mockActivity
}

func sampleDefs() []field.Definition {
	return []field.Definition{
		{ID: 1, Name: "Maker", FieldType: field.TypeText},
		{ID: 2, Name: "Year", FieldType: field.TypeNumber},
		{ID: 3, Name: "Condition", FieldType: field.TypeSelect, Options: field.EncodeOptions([]string{"Mint", "Worn"})},
		{ID: 4, Name: "Acquired", FieldType: field.TypeDate},
		{ID: 5, Name: "Signed", FieldType: field.TypeCheckbox},
	}
}

// --------------------- ParseListQuery ---------------------
func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery(sampleDefs(), "  teapot ", nil, "", -3, 0)
	assert.NoError(t, err)
	assert.Equal(t, "teapot", q.Search)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 50, q.Limit)
	assert.Empty(t, q.Filters)
}

func TestParseListQuery_LimitClamped(t *testing.T) {
	q, err := ParseListQuery(nil, "", nil, "", 0, 500)
	assert.NoError(t, err)
	assert.Equal(t, 100, q.Limit)
}

func TestParseListQuery_FilterCoercion(t *testing.T) {
	filters := []string{"Maker=Meissen", "Year=1880", "Signed=true", "Condition=Mint"}
	q, err := ParseListQuery(sampleDefs(), "", filters, "", 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []item.MetadataFilter{
		{FieldName: "Maker", Value: "Meissen"},
		{FieldName: "Year", Value: float64(1880)},
		{FieldName: "Signed", Value: true},
		{FieldName: "Condition", Value: "Mint"},
	}, q.Filters)
}

func TestParseListQuery_FilterMissingEquals(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Maker"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter must be in the format 'Field=Value'", qe.Message)
}

func TestParseListQuery_FilterBlankName(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{" =x"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter field name cannot be blank", qe.Message)
}

func TestParseListQuery_FilterUnknownField(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Weight=12"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Unknown metadata field 'Weight'", qe.Message)
}

func TestParseListQuery_FilterBlankValue(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Maker=  "}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter value cannot be blank", qe.Message)
}

func TestParseListQuery_FilterBadNumber(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Year=old"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter value must be a number", qe.Message)
}

func TestParseListQuery_FilterBadSelectOption(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Condition=Broken"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter value must be one of: Mint, Worn", qe.Message)
}

func TestParseListQuery_FilterBadDate(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Acquired=12.05.2020"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter value must be a date (YYYY-MM-DD)", qe.Message)
}

func TestParseListQuery_FilterBadCheckbox(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", []string{"Signed=maybe"}, "", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Filter value must be true or false", qe.Message)
}

func TestParseListQuery_SortBuiltins(t *testing.T) {
	for _, sort := range []string{"name", "-name", "created_at", "-created_at", "metadata:Year", "-metadata:Year"} {
		_, err := ParseListQuery(sampleDefs(), "", nil, sort, 0, 0)
		assert.NoError(t, err, sort)
	}
}

func TestParseListQuery_SortUnknownMetadataField(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", nil, "metadata:Weight", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Unknown metadata field 'Weight'", qe.Message)
}

func TestParseListQuery_SortInvalidKey(t *testing.T) {
	_, err := ParseListQuery(sampleDefs(), "", nil, "price", 0, 0)
	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	assert.Equal(t, "Sort must be 'name', 'created_at', or 'metadata:<field>'", qe.Message)
}

// --------------------- stripPrivateMetadata ---------------------
func TestStripPrivateMetadata(t *testing.T) {
	defs := []field.Definition{
		{Name: "Maker", FieldType: field.TypeText},
		{Name: "Paid", FieldType: field.TypeNumber, IsPrivate: true},
	}
	raw := datatypes.JSON(`{"Maker":"Meissen","Paid":120}`)

	stripped, err := stripPrivateMetadata(raw, defs)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"Maker":"Meissen"}`, string(stripped))
}

func TestStripPrivateMetadata_NoPrivateFields(t *testing.T) {
	defs := []field.Definition{{Name: "Maker", FieldType: field.TypeText}}
	raw := datatypes.JSON(`{"Maker":"Meissen"}`)

	stripped, err := stripPrivateMetadata(raw, defs)
	assert.NoError(t, err)
	assert.Equal(t, raw, stripped)
}

// --------------------- Get ---------------------
func TestGetItem_CarriesPrimaryImage(t *testing.T) {
	svc, mockCollection, mockItem, _, _ := setupItemServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{ID: 9, OwnerID: 1}, nil)
	mockItem.EXPECT().Get(uint(9), uint(42)).Return(item.Item{ID: 42, CollectionID: 9, Name: "Teapot"}, nil)
	imgID := uint(7)
	mockItem.EXPECT().PrimaryImageID(uint(42)).Return(&imgID, nil)

	it, err := svc.Get(1, 9, 42)
	assert.NoError(t, err)
	if assert.NotNil(t, it.PrimaryImageID) {
		assert.Equal(t, uint(7), *it.PrimaryImageID)
	}
}

// --------------------- Create ---------------------
func TestCreateItem_CollectionNotOwned(t *testing.T) {
	svc, mockCollection, _, _, _ := setupItemServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{}, gorm.ErrRecordNotFound)

	_, err := svc.Create(1, 9, item.CreateItemInput{Name: "Teapot"})
	assert.Equal(t, ErrCollectionNotFound, err)
}

func TestCreateItem_MetadataValidation(t *testing.T) {
	svc, mockCollection, _, mockField, _ := setupItemServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{ID: 9, OwnerID: 1}, nil)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{
		{Name: "Year", FieldType: field.TypeNumber, IsRequired: true},
	}, nil)

	_, err := svc.Create(1, 9, item.CreateItemInput{
		Name:     "Teapot",
		Metadata: map[string]any{"Year": "not a number"},
	})
	var me *MetadataError
	assert.ErrorAs(t, err, &me)
	assert.NotEmpty(t, me.Errors)
}

func TestCreateItem_Success(t *testing.T) {
	svc, mockCollection, mockItem, mockField, mockActivity := setupItemServiceMocks(t)

	mockCollection.EXPECT().GetForOwner(uint(9), uint(1)).Return(collection.Collection{ID: 9, OwnerID: 1}, nil)
	mockField.EXPECT().ListByCollection(uint(9)).Return([]field.Definition{
		{Name: "Year", FieldType: field.TypeNumber},
	}, nil)
	mockItem.EXPECT().Create(gomock.Any()).DoAndReturn(func(it *item.Item) error {
		it.ID = 42
		return nil
	})
	mockActivity.EXPECT().Create(gomock.Any()).Return(nil)
	mockActivity.EXPECT().OverflowIDs(uint(1), gomock.Any()).Return(nil, nil)
	mockActivity.EXPECT().DeleteByIDs(gomock.Nil()).Return(nil)

	it, err := svc.Create(1, 9, item.CreateItemInput{
		Name:     "  Teapot  ",
		Metadata: map[string]any{"Year": 1880},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Teapot", it.Name)
	assert.Equal(t, uint(9), it.CollectionID)
}
