package identity

import (
	"context"
	"errors"
)

// ErrNotFound occurs when no registered user carries the requested name.
var ErrNotFound = errors.New("user not found")

// Repository stores registered users in insertion order.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByName(ctx context.Context, name string) (User, error)
	List(ctx context.Context) ([]User, error)
}
