package model

import "time"

// Admin is a dashboard account. Created once by the createadmin command and
// never mutated or deleted through the HTTP API.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
