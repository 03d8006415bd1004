package model

import "time"

// Project is a portfolio entry shown on the public site and managed from the
// admin dashboard. Image holds the stored upload filename, empty when the
// project has no image.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectUpdate carries the editable project fields for a partial update.
// Empty fields keep their stored value; Image is handled separately by the
// upload flow.
type ProjectUpdate struct {
	Title       string
	Description string
	WebsiteURL  string
	Category    string
}
