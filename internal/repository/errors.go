package repository

import "errors"

var (
	ErrPhoneTaken   = errors.New("phone already registered")
	ErrUserNotFound = errors.New("user not found")
)
