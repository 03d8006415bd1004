package model

import "time"

// Career application statuses. Applications start as Pending and move through
// the hiring workflow via explicit admin transitions.
const (
	CareerStatusPending  = "Pending"
	CareerStatusReviewed = "Reviewed"
	CareerStatusHired    = "Hired"
)

// CareerApplication represents a job application submitted via the public
// career form. CV holds the stored upload filename and is always present.
type CareerApplication struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Message   string    `json:"message"`
	CV        string    `json:"cv"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidCareerStatus reports whether s is one of the allowed application statuses.
func ValidCareerStatus(s string) bool {
	switch s {
	case CareerStatusPending, CareerStatusReviewed, CareerStatusHired:
		return true
	}
	return false
}
