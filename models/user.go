package models

import "time"

// User represents a salon client account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	FirstTime    bool      `bson:"firstTime" json:"firstTime"`
	MinLen       int       `bson:"minLen" json:"minLen"`
	MaxLen       int       `bson:"maxLen" json:"maxLen"`
	Shape        string    `bson:"shape" json:"shape"`
	Appointments []string  `bson:"appointments" json:"appointments"`
	Note         string    `bson:"note" json:"note"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedOn    time.Time `bson:"createdOn" json:"createdOn"`
}

// UserRegistration is the payload of POST /create-account.
type UserRegistration struct {
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	FirstTime bool   `json:"firstTime"`
	MinLen    int    `json:"minLen"`
	MaxLen    int    `json:"maxLen"`
	Shape     string `json:"shape"`
	Password  string `json:"password"`
}

// PublicUser is the subset of a user returned to other callers.
type PublicUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedOn time.Time `json:"createdOn"`
}

// Public strips credentials and private preferences.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone, CreatedOn: u.CreatedOn}
}
