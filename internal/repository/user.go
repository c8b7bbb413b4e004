package repository

import (
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
)

type UserRepo interface {
	GetByID(id uint) (user.User, error)
	GetByEmail(email string) (user.User, error)
	GetByUsername(username string) (user.User, error)
	Create(u *user.User) error
	Save(u *user.User) error
	Delete(id uint) error
	List(offset, limit int) ([]user.User, error)
	Count() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *DBUserRepo) GetByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) List(offset, limit int) ([]user.User, error) {
	var users []user.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Count(&count).Error
	return count, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
