package valueobjects

import "fmt"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleClient: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsClient() bool {
	return r == RoleClient
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
