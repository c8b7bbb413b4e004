package application

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/item"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var (
	ErrAdminNotConfigured   = errors.New("admin login is not configured")
	ErrAdminCredentials     = errors.New("invalid admin credentials")
	ErrFeaturedNotPublic    = errors.New("only public collections can be featured")
	ErrNoFeaturedCollection = errors.New("select a featured collection before choosing items")
	ErrFeaturedItemsInvalid = errors.New("one or more items could not be found in the featured collection")
)

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers           int64 `json:"total_users"`
	TotalCollections     int64 `json:"total_collections"`
	TotalItems           int64 `json:"total_items"`
	FeaturedCollectionID *uint `json:"featured_collection_id"`
}

type AdminService struct {
	Repos *repository.Repos
}

func NewAdminService(repos *repository.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

func (s *AdminService) Configured() bool {
	return config.AdminEmail != "" && config.AdminPassword != ""
}

// Login checks the env-configured admin credentials in constant time and
// issues a short-lived admin token.
func (s *AdminService) Login(email, password string) (string, int, error) {
	if !s.Configured() {
		return "", 0, ErrAdminNotConfigured
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(config.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(config.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return "", 0, ErrAdminCredentials
	}

	ttl := time.Duration(config.AdminTokenMinutes) * time.Minute
	token, err := middleware.GenerateAdminToken(ttl)
	if err != nil {
		return "", 0, err
	}
	return token, int(ttl.Seconds()), nil
}

func (s *AdminService) Stats() (AdminStats, error) {
	users, err := s.Repos.User.Count()
	if err != nil {
		return AdminStats{}, err
	}
	collections, err := s.Repos.Collection.Count()
	if err != nil {
		return AdminStats{}, err
	}
	items, err := s.Repos.Item.Count()
	if err != nil {
		return AdminStats{}, err
	}

	stats := AdminStats{
		TotalUsers:       users,
		TotalCollections: collections,
		TotalItems:       items,
	}
	if featured, err := s.Repos.Collection.GetFeatured(); err == nil {
		stats.FeaturedCollectionID = &featured.ID
	}
	return stats, nil
}

func (s *AdminService) ListUsers(offset, limit int) ([]user.User, error) {
	return s.Repos.User.List(offset, limit)
}

// SetUserLock flips a user's active flag. Locked users cannot log in.
func (s *AdminService) SetUserLock(userID uint, locked bool) (user.User, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	usr.IsActive = !locked
	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *AdminService) DeleteUser(userID uint) error {
	if _, err := s.Repos.User.GetByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.Repos.User.Delete(userID)
}

func (s *AdminService) ListCollections(offset, limit int) ([]collection.WithCounts, error) {
	return s.Repos.Collection.ListAll(offset, limit)
}

func (s *AdminService) DeleteCollection(id uint) error {
	if _, err := s.Repos.Collection.GetByID(id); err != nil {
		return ErrCollectionNotFound
	}
	return s.Repos.Collection.Delete(id)
}

func (s *AdminService) ListItems(offset, limit int) ([]item.SearchResult, error) {
	return s.Repos.Item.ListAll(offset, limit)
}

func (s *AdminService) DeleteItem(id uint) error {
	if _, err := s.Repos.Item.GetByID(id); err != nil {
		return ErrItemNotFound
	}
	return s.Repos.Item.Delete(id)
}

// SetFeaturedCollection marks one public collection as featured and seeds
// its four newest non-draft items as the featured set. A nil id clears both.
func (s *AdminService) SetFeaturedCollection(id *uint) error {
	if id == nil {
		return s.Repos.ExecTx(func(tx *repository.Repos) error {
			if err := tx.Collection.SetFeatured(nil); err != nil {
				return err
			}
			return tx.Item.SetFeatured(nil)
		})
	}

	col, err := s.Repos.Collection.GetByID(*id)
	if err != nil {
		return ErrCollectionNotFound
	}
	if !col.IsPublic {
		return ErrFeaturedNotPublic
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Collection.SetFeatured(id); err != nil {
			return err
		}
		items, err := tx.Item.List(col.ID, item.ListQuery{Limit: 4}, true)
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		return tx.Item.SetFeatured(ids)
	})
}

func (s *AdminService) ListFeaturedItems() ([]item.WithPrimaryImage, error) {
	featured, err := s.Repos.Collection.GetFeatured()
	if err != nil {
		return []item.WithPrimaryImage{}, nil
	}
	return s.Repos.Item.List(featured.ID, item.ListQuery{Limit: maxPageLimit}, true)
}

// SetFeaturedItems replaces the featured item set within the featured
// collection. Every id must name a non-draft item of that collection.
func (s *AdminService) SetFeaturedItems(itemIDs []uint) error {
	featured, err := s.Repos.Collection.GetFeatured()
	if err != nil {
		return ErrNoFeaturedCollection
	}

	for _, id := range itemIDs {
		it, err := s.Repos.Item.Get(featured.ID, id)
		if err != nil || it.IsDraft {
			return ErrFeaturedItemsInvalid
		}
	}
	if len(itemIDs) > 0 {
		// The featured collection may have gone private since it was chosen.
		public, err := s.Repos.Item.ArePublic(itemIDs)
		if err != nil {
			return err
		}
		if !public {
			return ErrFeaturedNotPublic
		}
	}
	return s.Repos.Item.SetFeatured(itemIDs)
}
