package domain

import "time"

// Profile defaults applied at signup when the client omits the fields.
const (
	DefaultName   = "Jacques Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/avatar_1604080799.jpg"
)

type User struct {
	ID    string
	Email string
	Name  string
	About string
	// Avatar is a URL to the user's picture.
	Avatar string

	// PasswordHash is a bcrypt hash. Only the auth usecase reads it;
	// it must never reach a response body.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
