package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrTemplateNotFound   = errors.New("schema template not found")
)

type CollectionService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewCollectionService(repos *repository.Repos, activity *ActivityService) *CollectionService {
	return &CollectionService{
		Repos:    repos,
		Activity: activity,
	}
}

func (s *CollectionService) GetOwned(ownerID, id uint) (collection.Collection, error) {
	col, err := s.Repos.Collection.GetForOwner(id, ownerID)
	if err != nil {
		return collection.Collection{}, ErrCollectionNotFound
	}
	return col, nil
}

// GetVisible returns a collection the user may read: their own, or any
// public one. A zero userID means an anonymous caller.
func (s *CollectionService) GetVisible(userID, id uint) (collection.Collection, error) {
	col, err := s.Repos.Collection.GetByID(id)
	if err != nil {
		return collection.Collection{}, ErrCollectionNotFound
	}
	if col.OwnerID != userID && !col.IsPublic {
		return collection.Collection{}, ErrCollectionNotFound
	}
	return col, nil
}

func (s *CollectionService) ListOwned(ownerID uint) ([]collection.WithCounts, error) {
	return s.Repos.Collection.ListByOwner(ownerID)
}

// Create makes a collection, optionally seeding its fields from one of the
// owner's schema templates.
func (s *CollectionService) Create(ownerID uint, input collection.CreateCollectionInput) (collection.Collection, error) {
	col := collection.Collection{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		IsPublic:    input.IsPublic,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Collection.Create(&col); err != nil {
			return err
		}
		if input.SchemaTemplateID == nil {
			return nil
		}

		tpl, err := tx.Template.Get(ownerID, *input.SchemaTemplateID)
		if err != nil {
			return ErrTemplateNotFound
		}
		tplFields, err := tx.Template.ListFields(tpl.ID)
		if err != nil {
			return err
		}
		for i, tf := range tplFields {
			def := field.Definition{
				CollectionID: col.ID,
				Name:         tf.Name,
				FieldType:    tf.FieldType,
				IsRequired:   tf.IsRequired,
				IsPrivate:    tf.IsPrivate,
				Options:      tf.Options,
				Position:     i + 1,
			}
			if err := tx.Field.Create(&def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return collection.Collection{}, err
	}

	s.Activity.Record(ownerID, "collection.created", "collection", &col.ID, fmt.Sprintf("Created collection %q", col.Name))
	return col, nil
}

func (s *CollectionService) Update(ownerID, id uint, input collection.UpdateCollectionInput) (collection.Collection, error) {
	col, err := s.Repos.Collection.GetForOwner(id, ownerID)
	if err != nil {
		return collection.Collection{}, ErrCollectionNotFound
	}

	if input.Name != nil {
		col.Name = *input.Name
	}
	if input.Description != nil {
		col.Description = input.Description
	}
	if input.IsPublic != nil {
		col.IsPublic = *input.IsPublic
	}

	if err := s.Repos.Collection.Save(&col); err != nil {
		return collection.Collection{}, err
	}
	s.Activity.Record(ownerID, "collection.updated", "collection", &col.ID, fmt.Sprintf("Updated collection %q", col.Name))
	return col, nil
}

func (s *CollectionService) Delete(ownerID, id uint) error {
	col, err := s.Repos.Collection.GetForOwner(id, ownerID)
	if err != nil {
		return ErrCollectionNotFound
	}
	if err := s.Repos.Collection.Delete(id); err != nil {
		return err
	}
	s.Activity.Record(ownerID, "collection.deleted", "collection", nil, fmt.Sprintf("Deleted collection %q", col.Name))
	return nil
}

func (s *CollectionService) ListPublicByUser(ownerID uint) ([]collection.WithCounts, error) {
	return s.Repos.Collection.ListPublicByOwner(ownerID)
}

func (s *CollectionService) ListPublic() ([]collection.WithCounts, error) {
	return s.Repos.Collection.ListPublic()
}

// Featured returns the landing-page collection, or nil when none is set.
func (s *CollectionService) Featured() (*collection.WithCounts, error) {
	col, err := s.Repos.Collection.GetFeatured()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &col, nil
}

// FeaturedItems returns the curated landing-page items, newest first.
func (s *CollectionService) FeaturedItems() ([]item.SearchResult, error) {
	if _, err := s.Repos.Collection.GetFeatured(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []item.SearchResult{}, nil
		}
		return nil, err
	}
	return s.Repos.Item.ListFeatured()
}
