package domain

// Role is the office role assigned to a user by the contracts API.
type Role string

// Role values are the exact strings stored by the backend.
const (
	RoleEconomics           Role = "Экономика"
	RolePTS                 Role = "ПТС"
	RoleCapitalConstruction Role = "Кап. строй"
	RoleMES                 Role = "МЭС"
	RoleSystemAdministrator Role = "Администратор системы"
)

// SystemAdministratorLogin is the built-in account that always has full rights.
const SystemAdministratorLogin = "admin"

// User is the authenticated office user.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsSystemAdmin reports whether the user holds the system administrator role or is
// the built-in admin account.
func (u *User) IsSystemAdmin() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleSystemAdministrator || u.Username == SystemAdministratorLogin
}

// HasRole reports whether the user has one of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
