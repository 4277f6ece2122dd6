package models

import "time"

// User represents an authenticatable account (client or maallem).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "client" or "maallem"
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Identity is a resolved authenticated subject. It lives for one request
// and is passed by value into the booking pipeline; a nil *Identity means
// the caller is a guest.
type Identity struct {
	UserID string
	Email  string
}
