package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type ProfileService struct {
	Repos    *repository.Repos
	Activity *ActivityService
}

func NewProfileService(repos *repository.Repos, activity *ActivityService) *ProfileService {
	return &ProfileService{Repos: repos, Activity: activity}
}

func (s *ProfileService) GetProfile(userID uint) (user.ProfileResponse, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return user.ProfileResponse{}, ErrUserNotFound
	}
	return user.ProfileResponse{
		ID:        usr.ID,
		Email:     usr.Email,
		Username:  usr.Username,
		AvatarURL: usr.AvatarURL,
		CreatedAt: usr.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *ProfileService) UpdateProfile(userID uint, input user.UpdateProfileInput) (user.User, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	usernameChanged := false
	if input.Username != nil {
		name, err := NormalizeUsername(*input.Username, userID)
		if err != nil {
			return user.User{}, err
		}
		existing, err := s.Repos.User.GetByUsername(name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, err
		}
		if err == nil && existing.ID != userID {
			return user.User{}, ErrUsernameTaken
		}
		usernameChanged = usr.Username == nil || *usr.Username != name
		usr.Username = &name
	}
	if input.AvatarURL != nil {
		url := strings.TrimSpace(*input.AvatarURL)
		if url == "" {
			usr.AvatarURL = nil
		} else {
			usr.AvatarURL = &url
		}
	}

	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}
	if usernameChanged {
		s.Activity.Record(userID, "profile.username_updated", "user", &usr.ID, fmt.Sprintf("Updated username to %q", *usr.Username))
	}
	return usr, nil
}

// ResolveUser finds a user by username, or by id when the handle is all
// digits.
func (s *ProfileService) ResolveUser(handle string) (user.User, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return user.User{}, ErrUserNotFound
	}

	usr, err := s.Repos.User.GetByUsername(handle)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	if id, convErr := strconv.ParseUint(handle, 10, 64); convErr == nil {
		usr, err = s.Repos.User.GetByID(uint(id))
		if err == nil {
			return usr, nil
		}
	}
	return user.User{}, ErrUserNotFound
}

func (s *ProfileService) GetPublicProfile(handle string) (user.PublicProfile, []collection.WithCounts, error) {
	usr, err := s.ResolveUser(handle)
	if err != nil {
		return user.PublicProfile{}, nil, err
	}

	collections, err := s.Repos.Collection.ListPublicByOwner(usr.ID)
	if err != nil {
		return user.PublicProfile{}, nil, err
	}
	itemCount, err := s.Repos.Item.CountPublicByOwner(usr.ID)
	if err != nil {
		return user.PublicProfile{}, nil, err
	}
	stars, err := s.Repos.Star.EarnedStarCount(usr.ID)
	if err != nil {
		return user.PublicProfile{}, nil, err
	}

	name := strconv.FormatUint(uint64(usr.ID), 10)
	if usr.Username != nil {
		name = *usr.Username
	}

	profile := user.PublicProfile{
		Username:        name,
		AvatarURL:       usr.AvatarURL,
		JoinedAt:        usr.CreatedAt.Format(time.RFC3339),
		CollectionCount: int64(len(collections)),
		ItemCount:       itemCount,
		EarnedStarCount: stars,
	}
	return profile, collections, nil
}
