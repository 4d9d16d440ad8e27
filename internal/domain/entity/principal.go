package entity

import "github.com/google/uuid"

// Principal is the caller of a request.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     Role      `json:"role"`
}

// DeveloperPrincipal is the identity injected in development mode.
var DeveloperPrincipal = Principal{
	ID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	Email:    "dev@example.com",
	FullName: "Developer",
	Role:     RoleAdmin,
}
