package service

import "errors"

// ErrInvalidCredentials is returned on login failure. It deliberately does not
// distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidStatus is returned when a status transition targets a value
// outside the entity's enumerated set.
var ErrInvalidStatus = errors.New("invalid status")
