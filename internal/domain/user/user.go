// Package user holds the authenticated principal: either an administrator or
// a client-side account tied to a client company by a weak back-reference.
package user

import (
	"fmt"

	vo "clientsolve/internal/domain/user/valueobjects"
	"clientsolve/internal/shared/id"
)

type User struct {
	id           string
	username     string
	email        string
	passwordHash string
	role         vo.Role
	// clientID references the owning client company for client-role users.
	// The referenced client is not validated to exist; deleting a client
	// leaves its users orphaned on purpose.
	clientID string
	active   bool
}

// NewUser creates a user account. Client-role users must carry a client ID;
// the password is expected to be already hashed by the caller. Accounts are
// always created active.
func NewUser(username, email, passwordHash string, role vo.Role, clientID string) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role.IsClient() && len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required for client-role users")
	}
	if role.IsAdmin() {
		clientID = ""
	}

	return &User{
		id:           id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		clientID:     clientID,
		active:       true,
	}, nil
}

// ReconstructUser rebuilds a user from persisted state.
func ReconstructUser(userID, username, email, passwordHash string, role vo.Role, clientID string, active bool) (*User, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           userID,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		clientID:     clientID,
		active:       active,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) ClientID() string {
	return u.clientID
}

func (u *User) Active() bool {
	return u.active
}

// Update holds a partial update: nil fields are left untouched. PasswordHash
// set to nil (the common case) retains the stored hash; it is never
// overwritten with an empty value.
type Update struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *vo.Role
	ClientID     *string
}

// Apply merges the supplied fields into the user.
func (u *User) Apply(upd Update) error {
	if upd.Username != nil && len(*upd.Username) == 0 {
		return fmt.Errorf("username cannot be empty")
	}
	if upd.Email != nil && len(*upd.Email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	if upd.PasswordHash != nil && len(*upd.PasswordHash) == 0 {
		return fmt.Errorf("password cannot be empty")
	}
	if upd.Role != nil && !upd.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", *upd.Role)
	}

	if upd.Username != nil {
		u.username = *upd.Username
	}
	if upd.Email != nil {
		u.email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.passwordHash = *upd.PasswordHash
	}
	if upd.Role != nil {
		u.role = *upd.Role
	}
	if upd.ClientID != nil {
		u.clientID = *upd.ClientID
	}

	if u.role.IsClient() && len(u.clientID) == 0 {
		return fmt.Errorf("client ID is required for client-role users")
	}
	if u.role.IsAdmin() {
		u.clientID = ""
	}

	return nil
}

// ToggleActive flips the active flag.
func (u *User) ToggleActive() {
	u.active = !u.active
}
