package user

type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	PasswordHash   string   `json:"-"`
	ProfilePicture string   `json:"profilePicture"`
	CoverPicture   string   `json:"coverPicture"`
	Followers      []string `json:"followers"`
	Followings     []string `json:"followings"`
	IsAdmin        bool     `json:"isAdmin"`
	Desc           string   `json:"desc"`
	City           string   `json:"city"`
	From           string   `json:"from"`
	Relationship   int      `json:"relationship,omitempty"`
}

// UpdateRequest is the allow-list of fields a profile update may touch.
type UpdateRequest struct {
	Username       string `json:"username" validate:"omitempty,min=3,max=40"`
	Email          string `json:"email" validate:"omitempty,email,max=70"`
	Password       string `json:"password" validate:"omitempty,min=8"`
	ProfilePicture string `json:"profilePicture"`
	CoverPicture   string `json:"coverPicture"`
	Desc           string `json:"desc"`
	City           string `json:"city"`
	From           string `json:"from"`
	Relationship   int    `json:"relationship" validate:"omitempty,oneof=1 2 3"`
}
