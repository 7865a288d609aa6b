package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/config"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates the configured admin user and manages bearer
// tokens.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg    config.AuthConfig
	logger logger.Logger
}

// NewAuthService wires the auth service from the static admin credential.
func NewAuthService(cfg config.AuthConfig, log logger.Logger) AuthService {
	return &authService{cfg: cfg, logger: log}
}

// Login verifies the credential pair and issues an HS256 token. Username and
// password failures are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.AdminUsername {
		s.logger.Warn(ctx, "login rejected", logger.String("username", req.Username))
		return nil, apperrors.ErrUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn(ctx, "login rejected", logger.String("username", req.Username))
		return nil, apperrors.ErrUnauthorized("invalid credentials")
	}

	lifetime := s.cfg.TokenLifetime()
	now := time.Now()
	claims := Claims{
		Username: req.Username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	s.logger.Info(ctx, "admin logged in", logger.String("username", req.Username))
	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(lifetime.Seconds()),
	}, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthorized("invalid or expired token")
	}
	return claims, nil
}
