package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/star"
)

type StarRepo interface {
	CollectionStarred(userID, collectionID uint) (bool, error)
	StarCollection(userID, collectionID uint) error
	UnstarCollection(userID, collectionID uint) error
	CollectionStarCount(collectionID uint) (int64, error)
	ItemStarred(userID, itemID uint) (bool, error)
	StarItem(userID, itemID uint) error
	UnstarItem(userID, itemID uint) error
	ItemStarCount(itemID uint) (int64, error)
	ListStarredCollections(userID uint) ([]star.StarredCollection, error)
	ListStarredItems(userID uint) ([]star.StarredItem, error)
	EarnedStarCount(ownerID uint) (int64, error)
	WithTx(tx *gorm.DB) StarRepo
}

type DBStarRepo struct {
	db *gorm.DB
}

func NewStarRepo(db *gorm.DB) *DBStarRepo {
	return &DBStarRepo{db: db}
}

func (r *DBStarRepo) CollectionStarred(userID, collectionID uint) (bool, error) {
	var s star.CollectionStar
	err := r.db.Where("user_id = ? AND collection_id = ?", userID, collectionID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *DBStarRepo) StarCollection(userID, collectionID uint) error {
	return r.db.Create(&star.CollectionStar{UserID: userID, CollectionID: collectionID}).Error
}

func (r *DBStarRepo) UnstarCollection(userID, collectionID uint) error {
	return r.db.Where("user_id = ? AND collection_id = ?", userID, collectionID).
		Delete(&star.CollectionStar{}).Error
}

func (r *DBStarRepo) CollectionStarCount(collectionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&star.CollectionStar{}).Where("collection_id = ?", collectionID).Count(&count).Error
	return count, err
}

func (r *DBStarRepo) ItemStarred(userID, itemID uint) (bool, error) {
	var s star.ItemStar
	err := r.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *DBStarRepo) StarItem(userID, itemID uint) error {
	return r.db.Create(&star.ItemStar{UserID: userID, ItemID: itemID}).Error
}

func (r *DBStarRepo) UnstarItem(userID, itemID uint) error {
	return r.db.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&star.ItemStar{}).Error
}

func (r *DBStarRepo) ItemStarCount(itemID uint) (int64, error) {
	var count int64
	err := r.db.Model(&star.ItemStar{}).Where("item_id = ?", itemID).Count(&count).Error
	return count, err
}

func (r *DBStarRepo) ListStarredCollections(userID uint) ([]star.StarredCollection, error) {
	var out []star.StarredCollection
	err := r.db.Table("collection_stars cs").
		Select(`c.id AS collection_id, c.name, c.description, u.username AS owner_username,
			(SELECT count(*) FROM items i WHERE i.collection_id = c.id AND i.is_draft = false) AS item_count,
			(SELECT count(*) FROM collection_stars cs2 WHERE cs2.collection_id = c.id) AS star_count,
			cs.created_at AS starred_at`).
		Joins("JOIN collections c ON c.id = cs.collection_id").
		Joins("JOIN users u ON u.id = c.owner_id").
		Where("cs.user_id = ?", userID).
		Order("cs.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *DBStarRepo) ListStarredItems(userID uint) ([]star.StarredItem, error) {
	var out []star.StarredItem
	err := r.db.Table("item_stars s").
		Select(`i.id AS item_id, i.name, i.collection_id, c.name AS collection_name, u.username AS owner_username,
			(SELECT ii.id FROM item_images ii WHERE ii.item_id = i.id ORDER BY ii.position ASC, ii.id ASC LIMIT 1) AS primary_image_id,
			(SELECT count(*) FROM item_stars s2 WHERE s2.item_id = i.id) AS star_count,
			s.created_at AS starred_at`).
		Joins("JOIN items i ON i.id = s.item_id").
		Joins("JOIN collections c ON c.id = i.collection_id").
		Joins("JOIN users u ON u.id = c.owner_id").
		Where("s.user_id = ?", userID).
		Order("s.created_at DESC").
		Scan(&out).Error
	return out, err
}

// EarnedStarCount totals stars other users gave a user's collections and
// items. Only public collections count: stars collected before a collection
// went private stay out of the public profile.
func (r *DBStarRepo) EarnedStarCount(ownerID uint) (int64, error) {
	var collectionStars int64
	err := r.db.Table("collection_stars cs").
		Joins("JOIN collections c ON c.id = cs.collection_id").
		Where("c.owner_id = ? AND c.is_public = ?", ownerID, true).
		Count(&collectionStars).Error
	if err != nil {
		return 0, err
	}

	var itemStars int64
	err = r.db.Table("item_stars s").
		Joins("JOIN items i ON i.id = s.item_id").
		Joins("JOIN collections c ON c.id = i.collection_id").
		Where("c.owner_id = ? AND c.is_public = ?", ownerID, true).
		Count(&itemStars).Error
	if err != nil {
		return 0, err
	}
	return collectionStars + itemStars, nil
}

func (r *DBStarRepo) WithTx(tx *gorm.DB) StarRepo {
	if tx == nil {
		return r
	}
	return &DBStarRepo{db: tx}
}
