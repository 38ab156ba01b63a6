package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrCartEntryNotFound = errors.New("cart entry not found")
var ErrForbidden = errors.New("access forbidden")
