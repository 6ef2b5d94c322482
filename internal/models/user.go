package models

// Role is the set of caller roles known to this service.
type Role string

const (
	RoleEventCoordinator Role = "EC"
)

// User is the caller identity attached to a request by the identity middleware.
type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// CanManageEvents reports whether the user may create, edit or close events.
func (u User) CanManageEvents() bool {
	return u.Role == RoleEventCoordinator
}
