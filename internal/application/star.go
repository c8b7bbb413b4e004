package application

import (
	"fmt"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/star"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

type StarService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewStarService(repos *repository.Repos, activity *ActivityService) *StarService {
	return &StarService{
		Repos:    repos,
		Activity: activity,
	}
}

// visibleCollection is the starring visibility rule: the user's own
// collection or any public one.
func (s *StarService) visibleCollection(userID, collectionID uint) (uint, string, error) {
	col, err := s.Repos.Collection.GetByID(collectionID)
	if err != nil {
		return 0, "", ErrCollectionNotFound
	}
	if col.OwnerID != userID && !col.IsPublic {
		return 0, "", ErrCollectionNotFound
	}
	return col.OwnerID, col.Name, nil
}

func (s *StarService) visibleItem(userID, collectionID, itemID uint) (uint, string, error) {
	ownerID, _, err := s.visibleCollection(userID, collectionID)
	if err != nil {
		return 0, "", err
	}
	it, err := s.Repos.Item.Get(collectionID, itemID)
	if err != nil {
		return 0, "", ErrItemNotFound
	}
	return ownerID, it.Name, nil
}

func (s *StarService) CollectionStatus(userID, collectionID uint) (star.StatusResponse, error) {
	if _, _, err := s.visibleCollection(userID, collectionID); err != nil {
		return star.StatusResponse{}, err
	}
	return s.collectionStatus(userID, collectionID)
}

func (s *StarService) collectionStatus(userID, collectionID uint) (star.StatusResponse, error) {
	starred, err := s.Repos.Star.CollectionStarred(userID, collectionID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	count, err := s.Repos.Star.CollectionStarCount(collectionID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	return star.StatusResponse{Starred: starred, StarCount: count}, nil
}

// StarCollection is idempotent: starring an already-starred collection just
// reports the current status.
func (s *StarService) StarCollection(userID, collectionID uint) (star.StatusResponse, error) {
	ownerID, name, err := s.visibleCollection(userID, collectionID)
	if err != nil {
		return star.StatusResponse{}, err
	}

	starred, err := s.Repos.Star.CollectionStarred(userID, collectionID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	if !starred {
		if err := s.Repos.Star.StarCollection(userID, collectionID); err != nil {
			return star.StatusResponse{}, err
		}
		s.Activity.Record(userID, "collection.starred", "collection", &collectionID, fmt.Sprintf("Starred collection %q", name))
		if ownerID != userID {
			s.Activity.Record(ownerID, "collection.starred", "collection", &collectionID, fmt.Sprintf("Someone starred your collection %q", name))
		}
	}
	return s.collectionStatus(userID, collectionID)
}

func (s *StarService) UnstarCollection(userID, collectionID uint) (star.StatusResponse, error) {
	if _, _, err := s.visibleCollection(userID, collectionID); err != nil {
		return star.StatusResponse{}, err
	}
	if err := s.Repos.Star.UnstarCollection(userID, collectionID); err != nil {
		return star.StatusResponse{}, err
	}
	return s.collectionStatus(userID, collectionID)
}

func (s *StarService) ItemStatus(userID, collectionID, itemID uint) (star.StatusResponse, error) {
	if _, _, err := s.visibleItem(userID, collectionID, itemID); err != nil {
		return star.StatusResponse{}, err
	}
	return s.itemStatus(userID, itemID)
}

func (s *StarService) itemStatus(userID, itemID uint) (star.StatusResponse, error) {
	starred, err := s.Repos.Star.ItemStarred(userID, itemID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	count, err := s.Repos.Star.ItemStarCount(itemID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	return star.StatusResponse{Starred: starred, StarCount: count}, nil
}

func (s *StarService) StarItem(userID, collectionID, itemID uint) (star.StatusResponse, error) {
	ownerID, name, err := s.visibleItem(userID, collectionID, itemID)
	if err != nil {
		return star.StatusResponse{}, err
	}

	starred, err := s.Repos.Star.ItemStarred(userID, itemID)
	if err != nil {
		return star.StatusResponse{}, err
	}
	if !starred {
		if err := s.Repos.Star.StarItem(userID, itemID); err != nil {
			return star.StatusResponse{}, err
		}
		s.Activity.Record(userID, "item.starred", "item", &itemID, fmt.Sprintf("Starred item %q", name))
		if ownerID != userID {
			s.Activity.Record(ownerID, "item.starred", "item", &itemID, fmt.Sprintf("Someone starred your item %q", name))
		}
	}
	return s.itemStatus(userID, itemID)
}

func (s *StarService) UnstarItem(userID, collectionID, itemID uint) (star.StatusResponse, error) {
	if _, _, err := s.visibleItem(userID, collectionID, itemID); err != nil {
		return star.StatusResponse{}, err
	}
	if err := s.Repos.Star.UnstarItem(userID, itemID); err != nil {
		return star.StatusResponse{}, err
	}
	return s.itemStatus(userID, itemID)
}

func (s *StarService) ListStarredCollections(userID uint) ([]star.StarredCollection, error) {
	return s.Repos.Star.ListStarredCollections(userID)
}

func (s *StarService) ListStarredItems(userID uint) ([]star.StarredItem, error) {
	return s.Repos.Star.ListStarredItems(userID)
}
