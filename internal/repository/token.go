package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
)

type TokenRepo interface {
	Create(t *user.EmailToken) error
	Save(t *user.EmailToken) error
	GetByTokenAndType(token, tokenType string) (user.EmailToken, error)
	TokenExists(token string) (bool, error)
	WithTx(tx *gorm.DB) TokenRepo
}

type DBTokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *DBTokenRepo {
	return &DBTokenRepo{db: db}
}

func (r *DBTokenRepo) Create(t *user.EmailToken) error {
	return r.db.Create(t).Error
}

func (r *DBTokenRepo) Save(t *user.EmailToken) error {
	return r.db.Save(t).Error
}

func (r *DBTokenRepo) GetByTokenAndType(token, tokenType string) (user.EmailToken, error) {
	var t user.EmailToken
	err := r.db.Preload("User").
		Where("token = ? AND token_type = ?", token, tokenType).
		First(&t).Error
	if err != nil {
		return user.EmailToken{}, err
	}
	return t, nil
}

func (r *DBTokenRepo) TokenExists(token string) (bool, error) {
	var count int64
	err := r.db.Model(&user.EmailToken{}).Where("token = ?", token).Count(&count).Error
	return count > 0, err
}

func (r *DBTokenRepo) WithTx(tx *gorm.DB) TokenRepo {
	if tx == nil {
		return r
	}
	return &DBTokenRepo{db: tx}
}
