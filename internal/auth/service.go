package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"backend-socialhub/internal/apperr"
	"backend-socialhub/internal/db"
	"backend-socialhub/internal/validate"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	secret []byte
	ttl    time.Duration
	db     db.Querier
	redis  *redis.Client
}

type Claims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func NewService(secret string, ttl time.Duration, querier db.Querier, redisClient *redis.Client) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		db:     querier,
		redis:  redisClient,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if err := validate.Struct(req); err != nil {
		return User{}, err
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)
	`, req.Email).Scan(&exists); err != nil {
		return User{}, err
	}
	if exists {
		return User{}, apperr.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Followers:    []string{},
		Followings:   []string{},
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, followers, followings)
		VALUES ($1,$2,$3,$4,'{}','{}')
	`, user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (User, string, error) {
	if err := validate.Struct(req); err != nil {
		return User{}, "", err
	}

	row := s.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, profile_picture, cover_picture,
		       followers, followings, is_admin, description, city, hometown, relationship
		FROM users WHERE email=$1
	`, req.Email)

	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.ProfilePicture, &user.CoverPicture, &user.Followers, &user.Followings,
		&user.IsAdmin, &user.Desc, &user.City, &user.From, &user.Relationship)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", apperr.ErrInvalidLogin
	}
	if err != nil {
		return User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return User{}, "", apperr.ErrInvalidLogin
	}

	token, err := s.SignToken(user.ID, user.IsAdmin)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Logout revokes the presented token until it expires on its own. Without a
// redis client revocation is disabled and logout is a no-op.
func (s *Service) Logout(ctx context.Context, token string, claims *Claims) error {
	if s.redis == nil {
		return nil
	}
	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revokedKey(token), "1", ttl).Err()
}

func (s *Service) SignToken(userID string, isAdmin bool) (string, error) {
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyHeader extracts and verifies the credential from an Authorization
// header value. The scheme word before the token is not checked; only the
// second segment is parsed.
func (s *Service) VerifyHeader(ctx context.Context, header string) (*Claims, string, error) {
	if header == "" {
		return nil, "", apperr.ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, "", apperr.ErrInvalidToken
	}

	token := parts[1]
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, "", err
	}
	if s.isRevoked(ctx, token) {
		return nil, "", apperr.ErrInvalidToken
	}
	return claims, token, nil
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) isRevoked(ctx context.Context, token string) bool {
	if s.redis == nil {
		return false
	}
	n, err := s.redis.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		log.Printf("redis exists error: %v", err)
		return false
	}
	return n > 0
}

func revokedKey(token string) string {
	return "revoked:" + token
}
