package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"whisp/internal/config"
	"whisp/internal/models"
	"whisp/internal/repository"
)

// SessionClaims is what the identity provider asserts about the caller.
// The user record is always resolved from storage by email, never taken
// from the token beyond these claims.
type SessionClaims struct {
	Email string
	Name  string
	Image string
}

type SessionService interface {
	IssueToken(user *models.User) (string, error)
	ParseToken(tokenString string) (*SessionClaims, error)
	EnsureUser(ctx context.Context, claims SessionClaims) (*models.User, error)
	ResolveViewer(ctx context.Context) (*models.User, error)
}

type sessionService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewSessionService(userRepo repository.UserRepository, cfg *config.Config) SessionService {
	return &sessionService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *sessionService) IssueToken(user *models.User) (string, error) {
	name := user.Name
	image := ""
	if user.Image != nil {
		image = *user.Image
	}

	claims := jwt.MapClaims{
		"email":   user.Email,
		"name":    name,
		"picture": image,
		"exp":     time.Now().Add(s.cfg.Session.TokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *sessionService) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("token is missing the email claim")
	}

	claims := &SessionClaims{Email: email}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if image, ok := mapClaims["picture"].(string); ok {
		claims.Image = image
	}

	return claims, nil
}

// EnsureUser finds the account for an identity-provider sign-in, creating
// it on the first one. The only code path that creates users.
func (s *sessionService) EnsureUser(ctx context.Context, claims SessionClaims) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, claims.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:  claims.Name,
		Email: claims.Email,
	}
	if claims.Image != "" {
		image := claims.Image
		user.Image = &image
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user on first sign-in: %w", err)
	}

	return user, nil
}

// ResolveViewer maps the request's session identity to a user record.
// No session at all is ErrUnauthenticated; a valid session whose email
// has no user row is repository.ErrUserNotFound, never anonymous.
func (s *sessionService) ResolveViewer(ctx context.Context) (*models.User, error) {
	email, ok := ctx.Value("sessionEmail").(string)
	if !ok || email == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return user, nil
}
