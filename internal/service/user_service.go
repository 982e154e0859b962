package service

import (
	"context"
	"errors"

	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
	"SiteExer/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginFailed    = errors.New("invalid username or password")
	ErrCodeInvalid    = errors.New("verification failed")
	ErrOldPasswordBad = errors.New("old password is incorrect")
)

type userStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID uint64, hash string) error
}

type tokenStore interface {
	SetUserToken(ctx context.Context, userID uint64, token string) error
	DeleteUserToken(ctx context.Context, userID uint64) error
}

type codeVerifier interface {
	VerifyCode(ctx context.Context, scope, email, code string) (bool, error)
}

type UserService struct {
	repo   userStore
	tokens tokenStore
	codes  codeVerifier
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: mysql.DB},
		tokens: &redis.TokenRepository{},
		codes:  emailSvc,
	}
}

func (s *UserService) Register(ctx context.Context, username, password, email, code string) error {
	ok, err := s.codes.VerifyCode(ctx, "register", email, code)
	if err != nil || !ok {
		return ErrCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	})
}

// Login issues a token pair and mirrors the access token in Redis so only
// one session is active per account.
func (s *UserService) Login(ctx context.Context, login, password string) (*pkg.TokenPair, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, ErrLoginFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrLoginFailed
	}

	pair, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err = s.tokens.SetUserToken(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.tokens.DeleteUserToken(ctx, userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.TokenPair, error) {
	return pkg.Refresh(refreshToken)
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	ok, err := s.codes.VerifyCode(ctx, "reset", email, code)
	if err != nil || !ok {
		return ErrCodeInvalid
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}

// ChangePassword verifies the old password, swaps in the new one, and drops
// the active session.
func (s *UserService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrOldPasswordBad
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	return s.Logout(ctx, userID)
}
