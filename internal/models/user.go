package models

import "time"

type UserType string

const (
	UserStudent UserType = "student"
	UserCompany UserType = "company"
)

func (t UserType) Valid() bool {
	return t == UserStudent || t == UserCompany
}

// Session is the explicit logged-in context of a chat user.
type Session struct {
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	Type       UserType  `json:"type"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
