package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Token      TokenRepo
	Collection CollectionRepo
	Field      FieldRepo
	Item       ItemRepo
	Image      ImageRepo
	Star       StarRepo
	Template   TemplateRepo
	Activity   ActivityRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Token:      NewTokenRepo(db),
		Collection: NewCollectionRepo(db),
		Field:      NewFieldRepo(db),
		Item:       NewItemRepo(db),
		Image:      NewImageRepo(db),
		Star:       NewStarRepo(db),
		Template:   NewTemplateRepo(db),
		Activity:   NewActivityRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Token:      r.Token.WithTx(tx),
		Collection: r.Collection.WithTx(tx),
		Field:      r.Field.WithTx(tx),
		Item:       r.Item.WithTx(tx),
		Image:      r.Image.WithTx(tx),
		Star:       r.Star.WithTx(tx),
		Template:   r.Template.WithTx(tx),
		Activity:   r.Activity.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside one database transaction.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
