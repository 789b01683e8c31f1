package usecase

import (
	"context"
	"log/slog"
	"strings"

	"petcare-booking/internal/domain/user"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/pkg/jwt"
	"petcare-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmptyCredentials = errs.New("email and password are required")
	ErrUserNotFound     = errs.New("user not found")
	ErrTokenGeneration  = errs.New("token generation failed")
	ErrTokenValidation  = errs.New("token validation failed")
)

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	PhotoURL string    `json:"photo_url,omitempty"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *UserView
	TokenPair *TokenPair
}

type AuthUseCase interface {
	// Login is mocked: any non-empty credential pair resolves to the fixed
	// demo identity. The only failure mode is missing input.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type authUseCaseImpl struct {
	identity     *user.User
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthUseCase(identity *user.User, passwordHash string, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		identity:     identity,
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, email, pass string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(pass) == "" {
		return nil, ErrEmptyCredentials
	}

	// The identity provider is a stand-in: credentials are not verified,
	// only logged when they differ from the demo fixture.
	if err := password.ComparePassword(a.passwordHash, pass); err != nil {
		slog.Debug("non-demo credentials accepted by mocked login", "email", email)
	}

	tokenPair, err := a.issueTokens()
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      viewFromUser(a.identity),
		TokenPair: tokenPair,
	}, nil
}

func (a *authUseCaseImpl) Refresh(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	if claims.UserID != a.identity.ID() {
		return nil, ErrUserNotFound
	}

	return a.issueTokens()
}

func (a *authUseCaseImpl) CurrentUser(_ context.Context, userID uuid.UUID) (*UserView, error) {
	if userID != a.identity.ID() {
		return nil, ErrUserNotFound
	}
	return viewFromUser(a.identity), nil
}

func (a *authUseCaseImpl) issueTokens() (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(a.identity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(a.identity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func viewFromUser(u *user.User) *UserView {
	return &UserView{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email().Value(),
		PhotoURL: u.PhotoURL(),
	}
}
