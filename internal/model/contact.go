package model

import "time"

// Contact statuses. New submissions start as Unread; Resolved is only ever
// set explicitly, never by the Read/Unread toggle.
const (
	ContactStatusUnread   = "Unread"
	ContactStatusRead     = "Read"
	ContactStatusResolved = "Resolved"
)

// Contact represents a message submitted via the public contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidContactStatus reports whether s is one of the allowed contact statuses.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusResolved:
		return true
	}
	return false
}

// ContactUpdate carries the editable contact fields for a partial update.
// Empty fields keep their stored value.
type ContactUpdate struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}
