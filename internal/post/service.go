package post

import (
	"context"
	"errors"

	"backend-socialhub/internal/apperr"
	"backend-socialhub/internal/db"
	"backend-socialhub/internal/validate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, actorID string, req CreateRequest) (Post, error) {
	if err := validate.Struct(req); err != nil {
		return Post{}, err
	}
	if actorID != req.UserID {
		return Post{}, apperr.ErrAccessDenied
	}

	post := Post{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Desc:   req.Desc,
		Img:    req.Img,
		Likes:  req.Likes,
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO posts (id, user_id, description, img, likes)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at
	`, post.ID, post.UserID, post.Desc, post.Img, post.Likes)
	if err := row.Scan(&post.CreatedAt, &post.UpdatedAt); err != nil {
		return Post{}, err
	}
	return post, nil
}

func (s *Service) Get(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, description, img, likes, created_at, updated_at
		FROM posts WHERE id=$1
	`, id)

	var p Post
	err := row.Scan(&p.ID, &p.UserID, &p.Desc, &p.Img, &p.Likes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Post{}, apperr.ErrNotFound
	}
	if err != nil {
		return Post{}, err
	}
	return p, nil
}

// Update authorizes against the userId claimed in the body, not the stored
// owner. The stored owner column is never modified.
func (s *Service) Update(ctx context.Context, actorID, id string, req UpdateRequest) (Post, error) {
	if err := validate.Struct(req); err != nil {
		return Post{}, err
	}
	if actorID != req.UserID {
		return Post{}, apperr.ErrUpdateNotOwner
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if req.Desc != "" {
		p.Desc = req.Desc
	}
	if req.Img != "" {
		p.Img = req.Img
	}

	row := s.db.QueryRow(ctx, `
		UPDATE posts SET description=$2, img=$3, updated_at=now()
		WHERE id=$1
		RETURNING updated_at
	`, p.ID, p.Desc, p.Img)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, actorID string, isAdmin bool, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actorID != p.UserID && !isAdmin {
		return apperr.ErrDeleteDenied
	}

	_, err = s.db.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	return err
}

// ToggleLike flips actorID's membership in the post's like set and reports
// whether the post ended up liked.
func (s *Service) ToggleLike(ctx context.Context, actorID, id string) (bool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	for _, v := range p.Likes {
		if v == actorID {
			_, err := s.db.Exec(ctx, `
				UPDATE posts SET likes = array_remove(likes, $2)
				WHERE id=$1 AND $2 = ANY(likes)
			`, id, actorID)
			return false, err
		}
	}

	_, err = s.db.Exec(ctx, `
		UPDATE posts SET likes = array_append(likes, $2)
		WHERE id=$1 AND NOT ($2 = ANY(likes))
	`, id, actorID)
	return true, err
}

// Timeline returns the user's own posts followed by the posts of every
// followed user, grouped per followed user. No sorting or de-duplication.
func (s *Service) Timeline(ctx context.Context, userID string) ([]Post, error) {
	var followings []string
	err := s.db.QueryRow(ctx, `SELECT followings FROM users WHERE id=$1`, userID).Scan(&followings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	timeline := []Post{}
	own, err := s.listPosts(ctx, `
		SELECT id, user_id, description, img, likes, created_at, updated_at
		FROM posts WHERE user_id=$1
	`, userID)
	if err != nil {
		return nil, err
	}
	timeline = append(timeline, own...)

	if len(followings) == 0 {
		return timeline, nil
	}

	friends, err := s.listPosts(ctx, `
		SELECT id, user_id, description, img, likes, created_at, updated_at
		FROM posts WHERE user_id = ANY($1)
		ORDER BY array_position($1, user_id)
	`, followings)
	if err != nil {
		return nil, err
	}
	return append(timeline, friends...), nil
}

func (s *Service) listPosts(ctx context.Context, sql string, args ...any) ([]Post, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Desc, &p.Img, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
