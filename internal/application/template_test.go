package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/template"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupTemplateServiceMocks(t *testing.T) (*TemplateService, *mock_repository.MockTemplateRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTemplate := mock_repository.NewMockTemplateRepo(ctrl)
	repos := &repository.Repos{
		Template: mockTemplate,
	}
	svc := NewTemplateService(repos, NewActivityService(repos))
	return svc, mockTemplate
}

// --------------------- uniqueCopyName ---------------------
func TestUniqueCopyName_FirstCopy(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().NameExists(uint(1), "Porcelain (Copy)").Return(false, nil)

	name, err := svc.uniqueCopyName(1, "Porcelain")
	assert.NoError(t, err)
	assert.Equal(t, "Porcelain (Copy)", name)
}

func TestUniqueCopyName_CountsUp(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().NameExists(uint(1), "Porcelain (Copy)").Return(true, nil)
	mockTemplate.EXPECT().NameExists(uint(1), "Porcelain (Copy 2)").Return(true, nil)
	mockTemplate.EXPECT().NameExists(uint(1), "Porcelain (Copy 3)").Return(false, nil)

	name, err := svc.uniqueCopyName(1, "Porcelain")
	assert.NoError(t, err)
	assert.Equal(t, "Porcelain (Copy 3)", name)
}

// --------------------- checkTemplateFields ---------------------
func TestCheckTemplateFields_DuplicateNamesCaseInsensitive(t *testing.T) {
	err := checkTemplateFields([]template.TemplateFieldInput{
		{Name: "Maker", FieldType: field.TypeText},
		{Name: " maker ", FieldType: field.TypeText},
	})
	assert.Equal(t, ErrTemplateFieldNameTaken, err)
}

func TestCheckTemplateFields_SelectWithoutOptions(t *testing.T) {
	err := checkTemplateFields([]template.TemplateFieldInput{
		{Name: "Condition", FieldType: field.TypeSelect},
	})
	assert.Equal(t, ErrOptionsRequired, err)
}

func TestCheckTemplateFields_UnknownType(t *testing.T) {
	err := checkTemplateFields([]template.TemplateFieldInput{
		{Name: "Maker", FieldType: "dropdown"},
	})
	assert.Equal(t, ErrUnknownFieldType, err)
}

// --------------------- Copy ---------------------
func TestCopyTemplate_ExplicitNameTaken(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(5)).Return(template.SchemaTemplate{ID: 5, OwnerID: 1, Name: "Porcelain"}, nil)
	mockTemplate.EXPECT().ListFields(uint(5)).Return(nil, nil)
	mockTemplate.EXPECT().NameExists(uint(1), "Stamps").Return(true, nil)

	name := "Stamps"
	_, err := svc.Copy(1, 5, &name)
	assert.Equal(t, ErrTemplateNameTaken, err)
}

func TestCopyTemplate_SourceMissing(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(404)).Return(template.SchemaTemplate{}, gorm.ErrRecordNotFound)

	_, err := svc.Copy(1, 404, nil)
	assert.Equal(t, ErrTemplateNotFound, err)
}

// --------------------- Export / Import ---------------------
func TestExportYAML(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(5)).Return(template.SchemaTemplate{ID: 5, OwnerID: 1, Name: "Porcelain"}, nil)
	mockTemplate.EXPECT().ListFields(uint(5)).Return([]template.SchemaTemplateField{
		{ID: 1, Name: "Maker", FieldType: field.TypeText, IsRequired: true, Position: 1},
		{ID: 2, Name: "Condition", FieldType: field.TypeSelect, Options: field.EncodeOptions([]string{"Mint", "Worn"}), Position: 2},
	}, nil)

	data, err := svc.ExportYAML(1, 5)
	assert.NoError(t, err)

	var doc template.TemplateYAML
	assert.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Porcelain", doc.Name)
	assert.Len(t, doc.Fields, 2)
	assert.Equal(t, []string{"Mint", "Worn"}, doc.Fields[1].Options)
}

func TestImportYAML_Invalid(t *testing.T) {
	svc, _ := setupTemplateServiceMocks(t)

	_, err := svc.ImportYAML(1, []byte("{not yaml"))
	assert.Equal(t, ErrTemplateYAMLInvalid, err)
}

func TestImportYAML_MissingName(t *testing.T) {
	svc, _ := setupTemplateServiceMocks(t)

	_, err := svc.ImportYAML(1, []byte("fields: []\n"))
	assert.Equal(t, ErrTemplateYAMLInvalid, err)
}

// --------------------- Template fields ---------------------
func TestCreateTemplateField_AppendsAtEnd(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(5)).Return(template.SchemaTemplate{ID: 5, OwnerID: 1, Name: "Porcelain"}, nil)
	mockTemplate.EXPECT().FieldNameExists(uint(5), "Maker", uint(0)).Return(false, nil)
	mockTemplate.EXPECT().MaxFieldPosition(uint(5)).Return(2, nil)
	mockTemplate.EXPECT().CreateField(gomock.Any()).DoAndReturn(func(f *template.SchemaTemplateField) error {
		f.ID = 9
		return nil
	})

	rec, err := svc.CreateField(1, 5, template.TemplateFieldInput{Name: "Maker", FieldType: field.TypeText})
	assert.NoError(t, err)
	assert.Equal(t, 3, rec.Position)
}

func TestUpdateTemplateField_DroppingSelectClearsOptions(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(5)).Return(template.SchemaTemplate{ID: 5, OwnerID: 1}, nil)
	mockTemplate.EXPECT().GetField(uint(5), uint(9)).Return(template.SchemaTemplateField{
		ID: 9, SchemaTemplateID: 5, Name: "Condition", FieldType: field.TypeSelect,
		Options: field.EncodeOptions([]string{"Mint"}),
	}, nil)
	mockTemplate.EXPECT().SaveField(gomock.Any()).Return(nil)

	newType := field.TypeText
	rec, err := svc.UpdateField(1, 5, 9, template.UpdateTemplateFieldInput{FieldType: &newType})
	assert.NoError(t, err)
	assert.Equal(t, field.TypeText, rec.FieldType)
	assert.Nil(t, rec.Options)
}

func TestReorderTemplateFields_IncompletePermutation(t *testing.T) {
	svc, mockTemplate := setupTemplateServiceMocks(t)

	mockTemplate.EXPECT().Get(uint(1), uint(5)).Return(template.SchemaTemplate{ID: 5, OwnerID: 1}, nil)
	mockTemplate.EXPECT().ListFields(uint(5)).Return([]template.SchemaTemplateField{{ID: 1}, {ID: 2}}, nil)

	_, err := svc.ReorderFields(1, 5, []uint{2})
	assert.Equal(t, ErrReorderIncomplete, err)
}
