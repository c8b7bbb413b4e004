package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/image"
)

type ImageRepo interface {
	Get(itemID, imageID uint) (image.ItemImage, error)
	GetByID(imageID uint) (image.ItemImage, error)
	ListByItem(itemID uint) ([]image.ItemImage, error)
	MaxPosition(itemID uint) (int, error)
	Create(img *image.ItemImage) error
	Save(img *image.ItemImage) error
	Delete(id uint) error
	UpdatePositions(itemID uint, imageIDs []uint) error
	WithTx(tx *gorm.DB) ImageRepo
}

type DBImageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) *DBImageRepo {
	return &DBImageRepo{db: db}
}

func (r *DBImageRepo) Get(itemID, imageID uint) (image.ItemImage, error) {
	var img image.ItemImage
	err := r.db.Where("id = ? AND item_id = ?", imageID, itemID).First(&img).Error
	if err != nil {
		return image.ItemImage{}, err
	}
	return img, nil
}

func (r *DBImageRepo) GetByID(imageID uint) (image.ItemImage, error) {
	var img image.ItemImage
	if err := r.db.First(&img, imageID).Error; err != nil {
		return image.ItemImage{}, err
	}
	return img, nil
}

func (r *DBImageRepo) ListByItem(itemID uint) ([]image.ItemImage, error) {
	var imgs []image.ItemImage
	err := r.db.Where("item_id = ?", itemID).Order("position ASC, id ASC").Find(&imgs).Error
	return imgs, err
}

func (r *DBImageRepo) MaxPosition(itemID uint) (int, error) {
	var max *int
	err := r.db.Model(&image.ItemImage{}).
		Select("max(position)").
		Where("item_id = ?", itemID).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *DBImageRepo) Create(img *image.ItemImage) error {
	return r.db.Create(img).Error
}

func (r *DBImageRepo) Save(img *image.ItemImage) error {
	return r.db.Save(img).Error
}

func (r *DBImageRepo) Delete(id uint) error {
	return r.db.Delete(&image.ItemImage{}, id).Error
}

// UpdatePositions rewrites positions to match the given order, zero-based.
func (r *DBImageRepo) UpdatePositions(itemID uint, imageIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for pos, id := range imageIDs {
			err := tx.Model(&image.ItemImage{}).
				Where("id = ? AND item_id = ?", id, itemID).
				Update("position", pos).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBImageRepo) WithTx(tx *gorm.DB) ImageRepo {
	if tx == nil {
		return r
	}
	return &DBImageRepo{db: tx}
}
