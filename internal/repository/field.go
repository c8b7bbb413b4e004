package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

type FieldRepo interface {
	ListByCollection(collectionID uint) ([]field.Definition, error)
	Get(collectionID, fieldID uint) (field.Definition, error)
	NameExists(collectionID uint, name string, excludeID uint) (bool, error)
	MaxPosition(collectionID uint) (int, error)
	Create(f *field.Definition) error
	Save(f *field.Definition) error
	Delete(id uint) error
	UpdatePositions(collectionID uint, orderedIDs []uint) error
	WithTx(tx *gorm.DB) FieldRepo
}

type DBFieldRepo struct {
	db *gorm.DB
}

func NewFieldRepo(db *gorm.DB) *DBFieldRepo {
	return &DBFieldRepo{db: db}
}

func (r *DBFieldRepo) ListByCollection(collectionID uint) ([]field.Definition, error) {
	var defs []field.Definition
	err := r.db.Where("collection_id = ?", collectionID).
		Order("position ASC, id ASC").
		Find(&defs).Error
	return defs, err
}

func (r *DBFieldRepo) Get(collectionID, fieldID uint) (field.Definition, error) {
	var def field.Definition
	err := r.db.Where("id = ? AND collection_id = ?", fieldID, collectionID).First(&def).Error
	if err != nil {
		return field.Definition{}, err
	}
	return def, nil
}

func (r *DBFieldRepo) NameExists(collectionID uint, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&field.Definition{}).
		Where("collection_id = ? AND name = ?", collectionID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *DBFieldRepo) MaxPosition(collectionID uint) (int, error) {
	var max *int
	err := r.db.Model(&field.Definition{}).
		Where("collection_id = ?", collectionID).
		Select("max(position)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *DBFieldRepo) Create(f *field.Definition) error {
	return r.db.Create(f).Error
}

func (r *DBFieldRepo) Save(f *field.Definition) error {
	return r.db.Save(f).Error
}

func (r *DBFieldRepo) Delete(id uint) error {
	return r.db.Delete(&field.Definition{}, id).Error
}

// UpdatePositions rewrites positions to match the given id order, 1-based.
func (r *DBFieldRepo) UpdatePositions(collectionID uint, orderedIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			err := tx.Model(&field.Definition{}).
				Where("id = ? AND collection_id = ?", id, collectionID).
				Update("position", idx+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBFieldRepo) WithTx(tx *gorm.DB) FieldRepo {
	if tx == nil {
		return r
	}
	return &DBFieldRepo{db: tx}
}
