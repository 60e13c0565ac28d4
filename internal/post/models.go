package post

import "time"

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Desc      string    `json:"desc"`
	Img       string    `json:"img"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	UserID string   `json:"userId" validate:"required"`
	Desc   string   `json:"desc" validate:"omitempty,max=500"`
	Img    string   `json:"img"`
	Likes  []string `json:"likes"`
}

type UpdateRequest struct {
	UserID string `json:"userId" validate:"required"`
	Desc   string `json:"desc" validate:"omitempty,max=500"`
	Img    string `json:"img"`
}
