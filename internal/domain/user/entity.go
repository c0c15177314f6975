package user

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleHRManager Role = "HR_MANAGER"
	RoleStaff     Role = "STAFF"
)

// ValidRoles lists every role an account can be granted.
func ValidRoles() []string {
	return []string{string(RoleAdmin), string(RoleHRManager), string(RoleStaff)}
}

// User is a system account. It is distinct from the employee directory
// record; EmployeeID is a weak reference linking the two, and at most one
// account may reference a given employee.
type User struct {
	ID           string
	Username     string
	FullName     string
	Role         Role
	AvatarURL    string
	EmployeeID   *string
	PasswordHash *string
}

// Linked reports whether the account references an employee record.
func (u User) Linked() bool {
	return u.EmployeeID != nil && *u.EmployeeID != ""
}
