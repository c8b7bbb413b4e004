package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/collection"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
)

// --------------------- Setup ---------------------
func setupProfileServiceMocks(t *testing.T) (*ProfileService, *mock_repository.MockUserRepo, *mock_repository.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockActivity := mock_repository.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		User:     mockUser,
		Activity: mockActivity,
	}
	svc := NewProfileService(repos, NewActivityService(repos))
	return svc, mockUser, mockActivity
}

func strPtr(s string) *string { return &s }

// --------------------- UpdateProfile ---------------------
func TestUpdateProfile_SetsUsername(t *testing.T) {
	svc, mockUser, mockActivity := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1}, nil)
	mockUser.EXPECT().GetByUsername("clockfan").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)
	expectActivityRecord(mockActivity, 1)

	usr, err := svc.UpdateProfile(1, user.UpdateProfileInput{Username: strPtr("ClockFan")})
	assert.NoError(t, err)
	if assert.NotNil(t, usr.Username) {
		assert.Equal(t, "clockfan", *usr.Username)
	}
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1}, nil)
	mockUser.EXPECT().GetByUsername("clockfan").Return(user.User{ID: 2, Username: strPtr("clockfan")}, nil)

	_, err := svc.UpdateProfile(1, user.UpdateProfileInput{Username: strPtr("clockfan")})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestUpdateProfile_SameUsernameIsNoActivity(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, Username: strPtr("clockfan")}, nil)
	mockUser.EXPECT().GetByUsername("clockfan").Return(user.User{ID: 1, Username: strPtr("clockfan")}, nil)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	_, err := svc.UpdateProfile(1, user.UpdateProfileInput{Username: strPtr("clockfan")})
	assert.NoError(t, err)
}

func TestUpdateProfile_ClearsAvatar(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, AvatarURL: strPtr("https://img/old.png")}, nil)
	mockUser.EXPECT().Save(gomock.Any()).Return(nil)

	usr, err := svc.UpdateProfile(1, user.UpdateProfileInput{AvatarURL: strPtr("  ")})
	assert.NoError(t, err)
	assert.Nil(t, usr.AvatarURL)
}

// --------------------- GetPublicProfile ---------------------
func TestGetPublicProfile_AggregatesOnlyPublicContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockCollection := mock_repository.NewMockCollectionRepo(ctrl)
	mockItem := mock_repository.NewMockItemRepo(ctrl)
	mockStar := mock_repository.NewMockStarRepo(ctrl)
	repos := &repository.Repos{
		User:       mockUser,
		Collection: mockCollection,
		Item:       mockItem,
		Star:       mockStar,
	}
	svc := NewProfileService(repos, NewActivityService(repos))

	mockUser.EXPECT().GetByUsername("collector").Return(user.User{ID: 7, Username: strPtr("collector")}, nil)
	mockCollection.EXPECT().ListPublicByOwner(uint(7)).Return([]collection.WithCounts{
		{Collection: collection.Collection{ID: 9, OwnerID: 7, IsPublic: true}},
	}, nil)
	// the public-only counters, never the all-content ones
	mockItem.EXPECT().CountPublicByOwner(uint(7)).Return(int64(1), nil)
	mockStar.EXPECT().EarnedStarCount(uint(7)).Return(int64(2), nil)

	profile, collections, err := svc.GetPublicProfile("collector")
	assert.NoError(t, err)
	assert.Len(t, collections, 1)
	assert.Equal(t, int64(1), profile.CollectionCount)
	assert.Equal(t, int64(1), profile.ItemCount)
	assert.Equal(t, int64(2), profile.EarnedStarCount)
}

// --------------------- ResolveUser ---------------------
func TestResolveUser_ByUsername(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByUsername("clockfan").Return(user.User{ID: 1, Username: strPtr("clockfan")}, nil)

	usr, err := svc.ResolveUser(" ClockFan ")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), usr.ID)
}

func TestResolveUser_NumericHandleFallsBackToID(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByUsername("42").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().GetByID(uint(42)).Return(user.User{ID: 42}, nil)

	usr, err := svc.ResolveUser("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), usr.ID)
}

func TestResolveUser_Unknown(t *testing.T) {
	svc, mockUser, _ := setupProfileServiceMocks(t)

	mockUser.EXPECT().GetByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.ResolveUser("ghost")
	assert.Equal(t, ErrUserNotFound, err)
}
