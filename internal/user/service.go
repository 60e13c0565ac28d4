package user

import (
	"context"
	"errors"

	"backend-socialhub/internal/apperr"
	"backend-socialhub/internal/db"
	"backend-socialhub/internal/validate"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, profile_picture, cover_picture,
		       followers, followings, is_admin, description, city, hometown, relationship
		FROM users WHERE id=$1
	`, id)

	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.ProfilePicture, &u.CoverPicture, &u.Followers, &u.Followings,
		&u.IsAdmin, &u.Desc, &u.City, &u.From, &u.Relationship)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Update patches only the provided fields in a single statement; empty
// values fall through to the stored column.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (User, error) {
	if err := validate.Struct(req); err != nil {
		return User{}, err
	}

	var hash string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		hash = string(h)
	}

	row := s.db.QueryRow(ctx, `
		UPDATE users
		SET username = COALESCE(NULLIF($2,''), username),
		    email = COALESCE(NULLIF($3,''), email),
		    password_hash = COALESCE(NULLIF($4,''), password_hash),
		    profile_picture = COALESCE(NULLIF($5,''), profile_picture),
		    cover_picture = COALESCE(NULLIF($6,''), cover_picture),
		    description = COALESCE(NULLIF($7,''), description),
		    city = COALESCE(NULLIF($8,''), city),
		    hometown = COALESCE(NULLIF($9,''), hometown),
		    relationship = COALESCE(NULLIF($10,0), relationship)
		WHERE id=$1
		RETURNING id, username, email, password_hash, profile_picture, cover_picture,
		          followers, followings, is_admin, description, city, hometown, relationship
	`, id, req.Username, req.Email, hash, req.ProfilePicture, req.CoverPicture,
		req.Desc, req.City, req.From, req.Relationship)

	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.ProfilePicture, &u.CoverPicture, &u.Followers, &u.Followings,
		&u.IsAdmin, &u.Desc, &u.City, &u.From, &u.Relationship)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}

// Follow adds actorID to the target's follower set and targetID to the
// actor's following set. Both writes run in one transaction so the graph
// never goes asymmetric.
func (s *Service) Follow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.ErrSelfFollow
	}

	followers, err := s.followers(ctx, targetID)
	if err != nil {
		return err
	}
	if contains(followers, actorID) {
		return apperr.ErrAlreadyFollowing
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET followers = array_append(followers, $2)
		WHERE id=$1 AND NOT ($2 = ANY(followers))
	`, targetID, actorID); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET followings = array_append(followings, $2)
		WHERE id=$1 AND NOT ($2 = ANY(followings))
	`, actorID, targetID); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (s *Service) Unfollow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.ErrSelfUnfollow
	}

	followers, err := s.followers(ctx, targetID)
	if err != nil {
		return err
	}
	if !contains(followers, actorID) {
		return apperr.ErrNotFollowing
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET followers = array_remove(followers, $2)
		WHERE id=$1 AND $2 = ANY(followers)
	`, targetID, actorID); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET followings = array_remove(followings, $2)
		WHERE id=$1 AND $2 = ANY(followings)
	`, actorID, targetID); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (s *Service) followers(ctx context.Context, id string) ([]string, error) {
	var followers []string
	err := s.db.QueryRow(ctx, `SELECT followers FROM users WHERE id=$1`, id).Scan(&followers)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return followers, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
