package domain

import "time"

// Team member roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TeamMember represents a staff member with access to the admin panel
type TeamMember struct {
	ID        string
	UserID    string // auth-provider user id
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// IsAdmin returns true if the member has the admin role
func (m *TeamMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}
