package model

import (
	"time"
)

type User struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`

	// PasswordHash is the argon2id PHC string for the user's password.
	// It is never included in JSON responses.
	PasswordHash string `json:"-"`
}

func (u *User) FormattedCreatedTime() string {
	if u.Created.IsZero() {
		return "unknown"
	}
	return u.Created.Format(time.DateTime)
}
