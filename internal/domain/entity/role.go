package entity

// Role is the access role stored on a profile.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessional Role = "professional"
	RoleReceptionist Role = "receptionist"
	RoleResponsible  Role = "responsible"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProfessional, RoleReceptionist, RoleResponsible:
		return true
	}
	return false
}

// IsStaff reports whether the role may use the back office.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleProfessional || r == RoleReceptionist
}
