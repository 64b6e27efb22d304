package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/internal/utils"
	"github.com/airdash/airdash/models"
)

type authService struct {
	users  store.UserRepository
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService constructs the server-side [AuthService].
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: logger}
}

// RegisterUser implements [AuthService]. The plaintext password is replaced by
// its bcrypt hash before the user reaches the repository.
func (s *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.RegisterUser").Logger()

	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.Password = ""
	user.PasswordHash = string(hash)

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("login", created.Login).Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login implements [AuthService]. A missing account and a wrong password both
// come back as [ErrWrongPassword] so the response does not leak which logins
// exist.
func (s *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	if user.Login == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := s.users.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(user.Password)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	found.Password = ""
	return found, nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.UserID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, ErrTokenCreationFailed
	}
	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
