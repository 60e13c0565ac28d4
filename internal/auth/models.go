package auth

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

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,email,max=70"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=70"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	User
	Token string `json:"token"`
}
