package repository

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
)

type ItemRepo interface {
	Get(collectionID, itemID uint) (item.Item, error)
	GetByID(itemID uint) (item.Item, error)
	List(collectionID uint, q item.ListQuery, excludeDrafts bool) ([]item.WithPrimaryImage, error)
	Create(i *item.Item) error
	Save(i *item.Item) error
	Delete(id uint) error
	Count() (int64, error)
	CountByCollection(collectionID uint) (int64, error)
	CountPublicByOwner(ownerID uint) (int64, error)
	PrimaryImageID(itemID uint) (*uint, error)
	SearchPublic(term string, offset, limit int) ([]item.SearchResult, error)
	ListAll(offset, limit int) ([]item.SearchResult, error)
	ListFeatured() ([]item.SearchResult, error)
	SetFeatured(ids []uint) error
	ArePublic(ids []uint) (bool, error)
	WithTx(tx *gorm.DB) ItemRepo
}

type DBItemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) *DBItemRepo {
	return &DBItemRepo{db: db}
}

const primaryImageSelect = `(SELECT ii.id FROM item_images ii WHERE ii.item_id = items.id ORDER BY ii.position ASC, ii.id ASC LIMIT 1) AS primary_image_id`

func (r *DBItemRepo) Get(collectionID, itemID uint) (item.Item, error) {
	var i item.Item
	err := r.db.Where("id = ? AND collection_id = ?", itemID, collectionID).First(&i).Error
	if err != nil {
		return item.Item{}, err
	}
	return i, nil
}

func (r *DBItemRepo) GetByID(itemID uint) (item.Item, error) {
	var i item.Item
	if err := r.db.First(&i, itemID).Error; err != nil {
		return item.Item{}, err
	}
	return i, nil
}

func (r *DBItemRepo) List(collectionID uint, q item.ListQuery, excludeDrafts bool) ([]item.WithPrimaryImage, error) {
	query := r.db.Model(&item.Item{}).
		Select("items.*, " + primaryImageSelect).
		Where("items.collection_id = ?", collectionID)

	if excludeDrafts {
		query = query.Where("items.is_draft = ?", false)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("items.name ILIKE ? OR items.notes ILIKE ?", pattern, pattern)
	}
	for _, f := range q.Filters {
		query = query.Where(datatypes.JSONQuery("metadata").Equals(filterText(f.Value), f.FieldName))
	}

	query = applyItemSort(query, q.Sort)

	var out []item.WithPrimaryImage
	err := query.Offset(q.Offset).Limit(q.Limit).Scan(&out).Error
	return out, err
}

// filterText renders a typed filter value the way postgres renders the JSON
// scalar as text, so the extracted value compares cleanly.
func filterText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}

func applyItemSort(query *gorm.DB, sort string) *gorm.DB {
	if sort == "" {
		return query.Order("items.created_at DESC, items.id DESC")
	}

	descending := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	switch {
	case key == "name":
		return query.Order("items.name " + direction + ", items.id DESC")
	case key == "created_at":
		return query.Order("items.created_at " + direction + ", items.id DESC")
	default:
		// metadata:<field>, already validated by the service
		name := strings.TrimPrefix(strings.TrimPrefix(key, "metadata:"), "metadata.")
		quoted := strings.ReplaceAll(name, "'", "''")
		return query.Order(fmt.Sprintf("items.metadata ->> '%s' %s, items.id DESC", quoted, direction))
	}
}

func (r *DBItemRepo) Create(i *item.Item) error {
	return r.db.Create(i).Error
}

func (r *DBItemRepo) Save(i *item.Item) error {
	return r.db.Save(i).Error
}

func (r *DBItemRepo) Delete(id uint) error {
	return r.db.Delete(&item.Item{}, id).Error
}

func (r *DBItemRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&item.Item{}).Count(&count).Error
	return count, err
}

func (r *DBItemRepo) CountByCollection(collectionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&item.Item{}).Where("collection_id = ?", collectionID).Count(&count).Error
	return count, err
}

// CountPublicByOwner counts a user's items in public collections only; it
// feeds the public profile, so items kept private must not show up.
func (r *DBItemRepo) CountPublicByOwner(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Table("items").
		Joins("JOIN collections c ON c.id = items.collection_id").
		Where("c.owner_id = ? AND c.is_public = ?", ownerID, true).
		Count(&count).Error
	return count, err
}

func (r *DBItemRepo) PrimaryImageID(itemID uint) (*uint, error) {
	var id *uint
	err := r.db.Table("item_images").
		Select("id").
		Where("item_id = ?", itemID).
		Order("position ASC, id ASC").
		Limit(1).
		Scan(&id).Error
	return id, err
}

func (r *DBItemRepo) searchQuery() *gorm.DB {
	return r.db.Table("items").
		Select(`items.*, `+primaryImageSelect+`, c.name AS collection_name, u.username AS owner_username`).
		Joins("JOIN collections c ON c.id = items.collection_id").
		Joins("JOIN users u ON u.id = c.owner_id")
}

func (r *DBItemRepo) SearchPublic(term string, offset, limit int) ([]item.SearchResult, error) {
	pattern := "%" + term + "%"
	var out []item.SearchResult
	err := r.searchQuery().
		Where("c.is_public = ? AND items.is_draft = ?", true, false).
		Where("items.name ILIKE ? OR items.notes ILIKE ?", pattern, pattern).
		Order("items.created_at DESC, items.id DESC").
		Offset(offset).Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *DBItemRepo) ListAll(offset, limit int) ([]item.SearchResult, error) {
	var out []item.SearchResult
	err := r.searchQuery().
		Order("items.created_at DESC, items.id DESC").
		Offset(offset).Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *DBItemRepo) ListFeatured() ([]item.SearchResult, error) {
	var out []item.SearchResult
	err := r.searchQuery().
		Where("items.is_featured = ? AND c.is_public = ? AND items.is_draft = ?", true, true, false).
		Order("items.created_at DESC, items.id DESC").
		Scan(&out).Error
	return out, err
}

// SetFeatured replaces the featured item set.
func (r *DBItemRepo) SetFeatured(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item.Item{}).Where("is_featured = ?", true).Update("is_featured", false).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&item.Item{}).Where("id IN ?", ids).Update("is_featured", true).Error
	})
}

// ArePublic reports whether every given item belongs to a public collection.
func (r *DBItemRepo) ArePublic(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.Table("items").
		Joins("JOIN collections c ON c.id = items.collection_id").
		Where("items.id IN ? AND c.is_public = ?", ids, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func (r *DBItemRepo) WithTx(tx *gorm.DB) ItemRepo {
	if tx == nil {
		return r
	}
	return &DBItemRepo{db: tx}
}
