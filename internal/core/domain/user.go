package domain

import "errors"

var ErrMissingCredentials = errors.New("email and password are required")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrWrongPassword = errors.New("wrong password")

// User models a registered account. Records are append-only: once created
// they are never mutated or deleted.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
