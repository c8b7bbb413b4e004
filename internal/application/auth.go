package application

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/user"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
	"github.com/Endogen/antique-catalogue-sub001/pkg/types"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("email address not verified")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrTokenInvalid        = errors.New("token is invalid or expired")
	ErrRefreshInvalid      = errors.New("refresh token is invalid or expired")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type AuthService struct {
	Repos  *repository.Repos
	Mailer *Mailer
}

func NewAuthService(repos *repository.Repos, mailer *Mailer) *AuthService {
	return &AuthService{
		Repos:  repos,
		Mailer: mailer,
	}
}

func (s *AuthService) Register(input user.RegisterInput) (user.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.Repos.User.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.Repos.User.Create(&usr); err != nil {
		return user.User{}, err
	}

	if err := s.sendVerification(&usr); err != nil {
		log.Printf("[auth] failed to send verification mail to %s: %v", usr.Email, err)
	}
	return usr, nil
}

func (s *AuthService) Login(email, password string) (user.User, string, string, error) {
	usr, err := s.Repos.User.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", "", ErrAccountDisabled
	}
	if !usr.IsVerified {
		return user.User{}, "", "", ErrEmailNotVerified
	}

	access, refresh, err := s.issueTokenPair(usr.ID)
	if err != nil {
		return user.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := middleware.ParseToken(refreshToken)
	if err != nil || claims.TokenType != types.TokenTypeRefresh {
		return "", ErrRefreshInvalid
	}

	usr, err := s.Repos.User.GetByID(claims.UserID)
	if err != nil || !usr.IsActive {
		return "", ErrRefreshInvalid
	}

	return middleware.GenerateToken(usr.ID, types.TokenTypeAccess, false,
		time.Duration(config.AccessTokenMinutes)*time.Minute)
}

func (s *AuthService) issueTokenPair(userID uint) (string, string, error) {
	access, err := middleware.GenerateToken(userID, types.TokenTypeAccess, false,
		time.Duration(config.AccessTokenMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}
	refresh, err := middleware.GenerateToken(userID, types.TokenTypeRefresh, false,
		time.Duration(config.RefreshTokenDays)*24*time.Hour)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	rec, err := s.Repos.Token.GetByTokenAndType(token, user.TokenTypeVerify)
	if err != nil {
		return ErrTokenInvalid
	}
	if rec.UsedAt != nil || time.Now().After(rec.ExpiresAt) {
		return ErrTokenInvalid
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		now := time.Now()
		rec.UsedAt = &now
		if err := tx.Token.Save(&rec); err != nil {
			return err
		}
		usr := rec.User
		usr.IsVerified = true
		return tx.User.Save(&usr)
	})
}

// ResendVerification re-issues a verify token. It stays quiet about unknown
// addresses so the endpoint cannot be used to probe for accounts.
func (s *AuthService) ResendVerification(email string) error {
	usr, err := s.Repos.User.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil || usr.IsVerified {
		return nil
	}
	return s.sendVerification(&usr)
}

func (s *AuthService) ForgotPassword(email string) error {
	usr, err := s.Repos.User.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil
	}

	token, err := s.freshEmailToken()
	if err != nil {
		return err
	}
	rec := user.EmailToken{
		UserID:    usr.ID,
		Token:     token,
		TokenType: user.TokenTypeReset,
		ExpiresAt: time.Now().Add(time.Duration(config.ResetTokenHours) * time.Hour),
	}
	if err := s.Repos.Token.Create(&rec); err != nil {
		return err
	}
	if err := s.Mailer.SendPasswordReset(usr.Email, token); err != nil {
		log.Printf("[auth] failed to send reset mail to %s: %v", usr.Email, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	rec, err := s.Repos.Token.GetByTokenAndType(token, user.TokenTypeReset)
	if err != nil {
		return ErrTokenInvalid
	}
	if rec.UsedAt != nil || time.Now().After(rec.ExpiresAt) {
		return ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		now := time.Now()
		rec.UsedAt = &now
		if err := tx.Token.Save(&rec); err != nil {
			return err
		}
		usr := rec.User
		usr.PasswordHash = string(hashed)
		return tx.User.Save(&usr)
	})
}

func (s *AuthService) DeleteAccount(userID uint, password string) error {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return s.Repos.User.Delete(userID)
}

func (s *AuthService) sendVerification(usr *user.User) error {
	token, err := s.freshEmailToken()
	if err != nil {
		return err
	}
	rec := user.EmailToken{
		UserID:    usr.ID,
		Token:     token,
		TokenType: user.TokenTypeVerify,
		ExpiresAt: time.Now().Add(time.Duration(config.VerifyTokenHours) * time.Hour),
	}
	if err := s.Repos.Token.Create(&rec); err != nil {
		return err
	}
	return s.Mailer.SendVerification(usr.Email, token)
}

// freshEmailToken generates a token and regenerates on the off chance it
// already exists.
func (s *AuthService) freshEmailToken() (string, error) {
	for {
		token := newEmailToken()
		exists, err := s.Repos.Token.TokenExists(token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}
}

func newEmailToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
