package users

import (
	"context"
)

// Repository persists user records.
//
// Create returns common.ErrorDuplicateUser when the username is already
// taken; it never overwrites an existing record. GetByUsername returns
// common.ErrorNotFound for an absent username.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
