package user

import "context"

// Filter narrows List results. ClientID selects client-role users belonging
// to that client, in store order. Search matches case-insensitively against
// username and email.
type Filter struct {
	ClientID string
	Search   string
	Active   *bool
}

// Repository is the persistence boundary for user accounts. FindByID and
// FindByEmail return (nil, nil) when no record matches; mutators report
// whether the id was found.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) (bool, error)
	Delete(ctx context.Context, userID string) (bool, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, error)
}
