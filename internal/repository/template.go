package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/template"
)

type TemplateRepo interface {
	Get(ownerID, templateID uint) (template.SchemaTemplate, error)
	ListByOwner(ownerID uint) ([]template.SchemaTemplate, error)
	NameExists(ownerID uint, name string) (bool, error)
	Create(t *template.SchemaTemplate) error
	Save(t *template.SchemaTemplate) error
	Delete(id uint) error
	ListFields(templateID uint) ([]template.SchemaTemplateField, error)
	GetField(templateID, fieldID uint) (template.SchemaTemplateField, error)
	FieldNameExists(templateID uint, name string, excludeID uint) (bool, error)
	MaxFieldPosition(templateID uint) (int, error)
	CreateField(f *template.SchemaTemplateField) error
	SaveField(f *template.SchemaTemplateField) error
	DeleteField(id uint) error
	UpdateFieldPositions(templateID uint, fieldIDs []uint) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{db: db}
}

func (r *DBTemplateRepo) Get(ownerID, templateID uint) (template.SchemaTemplate, error) {
	var t template.SchemaTemplate
	err := r.db.Where("id = ? AND owner_id = ?", templateID, ownerID).First(&t).Error
	if err != nil {
		return template.SchemaTemplate{}, err
	}
	return t, nil
}

func (r *DBTemplateRepo) ListByOwner(ownerID uint) ([]template.SchemaTemplate, error) {
	var ts []template.SchemaTemplate
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC, id ASC").Find(&ts).Error
	return ts, err
}

func (r *DBTemplateRepo) NameExists(ownerID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&template.SchemaTemplate{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *DBTemplateRepo) Create(t *template.SchemaTemplate) error {
	return r.db.Create(t).Error
}

func (r *DBTemplateRepo) Save(t *template.SchemaTemplate) error {
	return r.db.Save(t).Error
}

func (r *DBTemplateRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schema_template_id = ?", id).Delete(&template.SchemaTemplateField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template.SchemaTemplate{}, id).Error
	})
}

func (r *DBTemplateRepo) ListFields(templateID uint) ([]template.SchemaTemplateField, error) {
	var fs []template.SchemaTemplateField
	err := r.db.Where("schema_template_id = ?", templateID).Order("position ASC, id ASC").Find(&fs).Error
	return fs, err
}

func (r *DBTemplateRepo) GetField(templateID, fieldID uint) (template.SchemaTemplateField, error) {
	var f template.SchemaTemplateField
	err := r.db.Where("id = ? AND schema_template_id = ?", fieldID, templateID).First(&f).Error
	if err != nil {
		return template.SchemaTemplateField{}, err
	}
	return f, nil
}

func (r *DBTemplateRepo) FieldNameExists(templateID uint, name string, excludeID uint) (bool, error) {
	query := r.db.Model(&template.SchemaTemplateField{}).
		Where("schema_template_id = ? AND name = ?", templateID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *DBTemplateRepo) MaxFieldPosition(templateID uint) (int, error) {
	var max *int
	err := r.db.Model(&template.SchemaTemplateField{}).
		Select("max(position)").
		Where("schema_template_id = ?", templateID).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *DBTemplateRepo) CreateField(f *template.SchemaTemplateField) error {
	return r.db.Create(f).Error
}

func (r *DBTemplateRepo) SaveField(f *template.SchemaTemplateField) error {
	return r.db.Save(f).Error
}

func (r *DBTemplateRepo) DeleteField(id uint) error {
	return r.db.Delete(&template.SchemaTemplateField{}, id).Error
}

func (r *DBTemplateRepo) UpdateFieldPositions(templateID uint, fieldIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for pos, id := range fieldIDs {
			err := tx.Model(&template.SchemaTemplateField{}).
				Where("id = ? AND schema_template_id = ?", id, templateID).
				Update("position", pos+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{db: tx}
}
