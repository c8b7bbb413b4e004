package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository/mock_repository"
	"github.com/Endogen/antique-catalogue-sub001/pkg/types"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock_repository.MockUserRepo, *mock_repository.MockTokenRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockToken := mock_repository.NewMockTokenRepo(ctrl)
	repos := &repository.Repos{
		User:  mockUser,
		Token: mockToken,
	}
	svc := NewAuthService(repos, NewMailer())
	return svc, mockUser, mockToken
}

func stubGenerateToken(t *testing.T, token string) {
	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, tokenType string, isAdmin bool, expireDuration time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser, mockToken := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetByEmail("alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 1
		return nil
	})
	mockToken.EXPECT().TokenExists(gomock.Any()).Return(false, nil)
	mockToken.EXPECT().Create(gomock.Any()).Return(nil)

	usr, err := svc.Register(user.RegisterInput{Email: " Alice@Test.com ", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", usr.Email)
	assert.True(t, usr.IsActive)
	assert.False(t, usr.IsVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("secret123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetByEmail("bob@test.com").Return(user.User{ID: 7, Email: "bob@test.com"}, nil)

	_, err := svc.Register(user.RegisterInput{Email: "bob@test.com", Password: "secret123"})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{
		ID:           1,
		Email:        "bob@test.com",
		PasswordHash: hashPassword(t, "secret123"),
		IsActive:     true,
		IsVerified:   true,
	}
	mockUser.EXPECT().GetByEmail("bob@test.com").Return(usr, nil)
	stubGenerateToken(t, "token123")

	got, access, refresh, err := svc.Login("Bob@Test.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, usr.Email, got.Email)
	assert.Equal(t, "token123", access)
	assert.Equal(t, "token123", refresh)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{ID: 1, PasswordHash: hashPassword(t, "secret123"), IsActive: true, IsVerified: true}
	mockUser.EXPECT().GetByEmail("bob@test.com").Return(usr, nil)

	_, _, _, err := svc.Login("bob@test.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost@test.com", "secret123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_Disabled(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{ID: 1, PasswordHash: hashPassword(t, "secret123"), IsActive: false, IsVerified: true}
	mockUser.EXPECT().GetByEmail("bob@test.com").Return(usr, nil)

	_, _, _, err := svc.Login("bob@test.com", "secret123")
	assert.Equal(t, ErrAccountDisabled, err)
}

func TestLogin_Unverified(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{ID: 1, PasswordHash: hashPassword(t, "secret123"), IsActive: true, IsVerified: false}
	mockUser.EXPECT().GetByEmail("bob@test.com").Return(usr, nil)

	_, _, _, err := svc.Login("bob@test.com", "secret123")
	assert.Equal(t, ErrEmailNotVerified, err)
}

// --------------------- Refresh ---------------------
func TestRefresh_Success(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	refresh, err := middleware.GenerateToken(1, types.TokenTypeRefresh, false, time.Hour)
	assert.NoError(t, err)

	mockUser.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, IsActive: true}, nil)
	stubGenerateToken(t, "fresh-access")

	access, err := svc.Refresh(refresh)
	assert.NoError(t, err)
	assert.Equal(t, "fresh-access", access)
}

func TestRefresh_WrongTokenType(t *testing.T) {
	svc, _, _ := setupAuthServiceMocks(t)

	access, err := middleware.GenerateToken(1, types.TokenTypeAccess, false, time.Hour)
	assert.NoError(t, err)

	_, err = svc.Refresh(access)
	assert.Equal(t, ErrRefreshInvalid, err)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _, _ := setupAuthServiceMocks(t)

	_, err := svc.Refresh("not-a-jwt")
	assert.Equal(t, ErrRefreshInvalid, err)
}

func TestRefresh_DisabledUser(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	refresh, err := middleware.GenerateToken(5, types.TokenTypeRefresh, false, time.Hour)
	assert.NoError(t, err)

	mockUser.EXPECT().GetByID(uint(5)).Return(user.User{ID: 5, IsActive: false}, nil)

	_, err = svc.Refresh(refresh)
	assert.Equal(t, ErrRefreshInvalid, err)
}

// --------------------- ResendVerification / ForgotPassword ---------------------
func TestResendVerification_QuietOnUnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	assert.NoError(t, svc.ResendVerification("ghost@test.com"))
}

func TestForgotPassword_QuietOnUnknownEmail(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	assert.NoError(t, svc.ForgotPassword("ghost@test.com"))
}

// --------------------- DeleteAccount ---------------------
func TestDeleteAccount_Success(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{ID: 3, PasswordHash: hashPassword(t, "secret123")}
	mockUser.EXPECT().GetByID(uint(3)).Return(usr, nil)
	mockUser.EXPECT().Delete(uint(3)).Return(nil)

	assert.NoError(t, svc.DeleteAccount(3, "secret123"))
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupAuthServiceMocks(t)

	usr := user.User{ID: 3, PasswordHash: hashPassword(t, "secret123")}
	mockUser.EXPECT().GetByID(uint(3)).Return(usr, nil)

	err := svc.DeleteAccount(3, "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}
