package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/activity"
)

type ActivityRepo interface {
	Create(l *activity.Log) error
	ListByUser(userID uint, limit int) ([]activity.Log, error)
	OverflowIDs(userID uint, keep int) ([]uint, error)
	DeleteByIDs(ids []uint) error
	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{db: db}
}

func (r *DBActivityRepo) Create(l *activity.Log) error {
	return r.db.Create(l).Error
}

func (r *DBActivityRepo) ListByUser(userID uint, limit int) ([]activity.Log, error) {
	var logs []activity.Log
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}

// OverflowIDs returns the ids of logs beyond the newest `keep` entries.
func (r *DBActivityRepo) OverflowIDs(userID uint, keep int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&activity.Log{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(keep).
		Limit(1000).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *DBActivityRepo) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&activity.Log{}, ids).Error
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{db: tx}
}
