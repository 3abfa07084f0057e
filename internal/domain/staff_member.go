package domain

import "time"

// StaffMember links a user account to a role inside a vendor's business,
// as managed through /restaurant/staff/.
type StaffMember struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
