package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adamanr/workforce_service/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenSize = 16

	accessTokenPrefix  = "access_token:"
	refreshTokenPrefix = "refresh_token:"
)

const loginQuery = `SELECT u.user_id, u.email, u.password, u.role, u.company_id, u.project_id,
	COALESCE(e.employee_company_id, 0), COALESCE(e.project_id, 0)
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.user_id AND e.is_delete = 0
	WHERE u.email = $1 AND u.is_delete = 0
	LIMIT 1`

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

type account struct {
	claims   entity.Claims
	password string
}

func (c *AuthController) AuthLogin(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	var acc account

	if err := c.deps.DB.QueryRow(ctx, loginQuery, req.Email).Scan(
		&acc.claims.ID, &acc.claims.Email, &acc.password, &acc.claims.Role,
		&acc.claims.CompanyID, &acc.claims.ProjectID,
		&acc.claims.EmployeeCompanyID, &acc.claims.EmployeeProjectID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("user with this email not found", slog.String("email", req.Email))
			return nil, ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error querying user", slog.String("error", err.Error()))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.password), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	accessToken, err := c.createToken(acc.claims, "access")
	if err != nil {
		return nil, err
	}

	refreshToken, err := c.createToken(acc.claims, "refresh")
	if err != nil {
		return nil, err
	}

	if err = c.deps.Redis.Set(ctx, accessTokenPrefix+accessToken, "valid", c.deps.Config.Redis.AccessTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting access token", slog.String("error", err.Error()))
		return nil, err
	}

	if err = c.deps.Redis.Set(ctx, refreshTokenPrefix+refreshToken, "valid", c.deps.Config.Redis.RefreshTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting refresh token", slog.String("error", err.Error()))
		return nil, err
	}

	return &entity.LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (c *AuthController) createToken(base entity.Claims, tokenType string) (string, error) {
	tokenID, err := generateTokenID(c.deps.Logger)
	if err != nil {
		return "", err
	}

	expiresAt := c.deps.Config.Redis.AccessTokenTTL
	if tokenType == "refresh" {
		expiresAt = c.deps.Config.Redis.RefreshTokenTTL
	}

	now := time.Now()
	claims := base
	claims.TokenID = tokenID
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresAt)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()), slog.String("token_type", tokenType))
		return "", err
	}

	return tokenStr, nil
}

func generateTokenID(logger *slog.Logger) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func bearerToken(authHeader string) (string, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		return "", fmt.Errorf("%w: invalid bearer token", ErrInvalidToken)
	}

	return tokenStr, nil
}

// CheckUserToken validates an Authorization header against the token
// allow-list and returns its claims.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr, err := bearerToken(authHeader)
	if err != nil {
		c.deps.Logger.Warn("Invalid bearer token")
		return nil, err
	}

	if err := c.deps.Redis.Get(ctx, accessTokenPrefix+tokenStr).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			c.deps.Logger.Warn("Token revoked")
			return nil, ErrTokenRevoked
		}

		c.deps.Logger.Error("Error reading token", slog.String("error", err.Error()))
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// AuthLogout removes the access token and, when given, the refresh token
// from the allow-list.
func (c *AuthController) AuthLogout(ctx context.Context, authHeader, refreshToken string) error {
	tokenStr, err := bearerToken(authHeader)
	if err != nil {
		return err
	}

	keys := []string{accessTokenPrefix + tokenStr}
	if refreshToken != "" {
		keys = append(keys, refreshTokenPrefix+refreshToken)
	}

	if err := c.deps.Redis.Del(ctx, keys...).Err(); err != nil {
		c.deps.Logger.Error("Error deleting tokens", slog.String("error", err.Error()))
		return err
	}

	return nil
}
