package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
)

type CollectionRepo interface {
	GetByID(id uint) (collection.Collection, error)
	GetForOwner(id, ownerID uint) (collection.Collection, error)
	GetPublic(id uint) (collection.Collection, error)
	ListByOwner(ownerID uint) ([]collection.WithCounts, error)
	ListPublicByOwner(ownerID uint) ([]collection.WithCounts, error)
	ListPublic() ([]collection.WithCounts, error)
	ListAll(offset, limit int) ([]collection.WithCounts, error)
	Create(c *collection.Collection) error
	Save(c *collection.Collection) error
	Delete(id uint) error
	Count() (int64, error)
	SetFeatured(id *uint) error
	GetFeatured() (collection.WithCounts, error)
	WithTx(tx *gorm.DB) CollectionRepo
}

type DBCollectionRepo struct {
	db *gorm.DB
}

func NewCollectionRepo(db *gorm.DB) *DBCollectionRepo {
	return &DBCollectionRepo{db: db}
}

const (
	itemCountJoin       = `LEFT JOIN (SELECT collection_id, count(id) AS item_count FROM items GROUP BY collection_id) ic ON ic.collection_id = c.id`
	starCountJoin       = `LEFT JOIN (SELECT collection_id, count(id) AS star_count FROM collection_stars GROUP BY collection_id) sc ON sc.collection_id = c.id`
	publicItemCountJoin = `LEFT JOIN (SELECT collection_id, count(id) AS item_count FROM items WHERE is_draft = false GROUP BY collection_id) ic ON ic.collection_id = c.id`
)

func (r *DBCollectionRepo) withCountsQuery(itemJoin string) *gorm.DB {
	return r.db.Table("collections c").
		Select(`c.*, coalesce(ic.item_count, 0) AS item_count, coalesce(sc.star_count, 0) AS star_count, u.username AS owner_username`).
		Joins(itemJoin).
		Joins(starCountJoin).
		Joins(`JOIN users u ON u.id = c.owner_id`)
}

func (r *DBCollectionRepo) GetByID(id uint) (collection.Collection, error) {
	var c collection.Collection
	if err := r.db.First(&c, id).Error; err != nil {
		return collection.Collection{}, err
	}
	return c, nil
}

func (r *DBCollectionRepo) GetForOwner(id, ownerID uint) (collection.Collection, error) {
	var c collection.Collection
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&c).Error
	if err != nil {
		return collection.Collection{}, err
	}
	return c, nil
}

func (r *DBCollectionRepo) GetPublic(id uint) (collection.Collection, error) {
	var c collection.Collection
	err := r.db.Where("id = ? AND is_public = ?", id, true).First(&c).Error
	if err != nil {
		return collection.Collection{}, err
	}
	return c, nil
}

func (r *DBCollectionRepo) ListByOwner(ownerID uint) ([]collection.WithCounts, error) {
	var out []collection.WithCounts
	err := r.withCountsQuery(itemCountJoin).
		Where("c.owner_id = ?", ownerID).
		Order("c.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBCollectionRepo) ListPublicByOwner(ownerID uint) ([]collection.WithCounts, error) {
	var out []collection.WithCounts
	err := r.withCountsQuery(publicItemCountJoin).
		Where("c.owner_id = ? AND c.is_public = ?", ownerID, true).
		Order("c.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBCollectionRepo) ListPublic() ([]collection.WithCounts, error) {
	var out []collection.WithCounts
	err := r.withCountsQuery(publicItemCountJoin).
		Where("c.is_public = ?", true).
		Order("c.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBCollectionRepo) ListAll(offset, limit int) ([]collection.WithCounts, error) {
	var out []collection.WithCounts
	err := r.withCountsQuery(itemCountJoin).
		Order("c.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *DBCollectionRepo) Create(c *collection.Collection) error {
	return r.db.Create(c).Error
}

func (r *DBCollectionRepo) Save(c *collection.Collection) error {
	return r.db.Save(c).Error
}

func (r *DBCollectionRepo) Delete(id uint) error {
	return r.db.Delete(&collection.Collection{}, id).Error
}

func (r *DBCollectionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&collection.Collection{}).Count(&count).Error
	return count, err
}

// SetFeatured marks exactly one collection as featured; nil clears the flag
// everywhere.
func (r *DBCollectionRepo) SetFeatured(id *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&collection.Collection{}).Where("is_featured = ?", true).Update("is_featured", false).Error; err != nil {
			return err
		}
		if id == nil {
			return nil
		}
		return tx.Model(&collection.Collection{}).Where("id = ?", *id).Update("is_featured", true).Error
	})
}

func (r *DBCollectionRepo) GetFeatured() (collection.WithCounts, error) {
	var out collection.WithCounts
	err := r.withCountsQuery(publicItemCountJoin).
		Where("c.is_featured = ? AND c.is_public = ?", true, true).
		Limit(1).
		Scan(&out).Error
	if err != nil {
		return collection.WithCounts{}, err
	}
	if out.ID == 0 {
		return collection.WithCounts{}, gorm.ErrRecordNotFound
	}
	return out, nil
}

func (r *DBCollectionRepo) WithTx(tx *gorm.DB) CollectionRepo {
	if tx == nil {
		return r
	}
	return &DBCollectionRepo{db: tx}
}
