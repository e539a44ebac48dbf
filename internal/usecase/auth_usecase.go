package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSetupDisabled      = errors.New("admin setup disabled")
	ErrDocenteExists      = errors.New("a docente account already exists")
)

// AuthResult is a signed-in session.
type AuthResult struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

type IAuthUseCase interface {
	Register(ctx context.Context, in UserInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	SetupAdmin(ctx context.Context, setupToken string, in UserInput) (AuthResult, error)
}

type AuthUseCase struct {
	accounts   *UserUseCase
	users      interfaces.IUserRepository
	tokens     interfaces.ITokenService
	setupToken string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(accounts *UserUseCase, users interfaces.IUserRepository, tokens interfaces.ITokenService, setupToken string) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, users: users, tokens: tokens, setupToken: setupToken}
}

// Register creates a student account and signs it in.
func (u *AuthUseCase) Register(ctx context.Context, in UserInput) (AuthResult, error) {
	user, err := u.accounts.createAccount(ctx, in, entities.RoleEstudiante)
	if err != nil {
		return AuthResult{}, err
	}
	return u.session(user)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	user, err := u.users.GetByEmail(ctx, normalized)
	if err != nil {
		return AuthResult{}, err
	}
	if user.UID == "" || user.PasswordHash == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.WithContext(ctx).Info().Str("user_id", user.UID).Msg("[auth][usecase] wrong password")
		return AuthResult{}, ErrInvalidCredentials
	}
	return u.session(user)
}

// SetupAdmin bootstraps the first docente. It needs the configured setup
// token and stops working once any docente exists.
func (u *AuthUseCase) SetupAdmin(ctx context.Context, setupToken string, in UserInput) (AuthResult, error) {
	if u.setupToken == "" {
		return AuthResult{}, ErrSetupDisabled
	}
	if subtle.ConstantTimeCompare([]byte(setupToken), []byte(u.setupToken)) != 1 {
		return AuthResult{}, ErrPermissionDenied
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return AuthResult{}, err
	}
	for _, existing := range users {
		if existing.Rol == entities.RoleDocente {
			return AuthResult{}, ErrDocenteExists
		}
	}

	user, err := u.accounts.createAccount(ctx, in, entities.RoleDocente)
	if err != nil {
		return AuthResult{}, err
	}
	logger.WithContext(ctx).Warn().Str("user_id", user.UID).Msg("[auth][usecase] bootstrap docente created")
	return u.session(user)
}

func (u *AuthUseCase) session(user entities.User) (AuthResult, error) {
	token, err := u.tokens.Issue(entities.Identity{UID: user.UID, Email: user.Email, Role: user.Rol})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}
