package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the acting identity of a request.
type User struct {
	id    kernel.ID
	role  Role
	guard guard.ConstructorGuard
}

// NewUser validates both the identity and the role.
func NewUser(id kernel.ID, role Role) (User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return User{}, err
	}

	return User{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u User) ID() kernel.ID {
	return u.id
}

func (u User) Role() Role {
	return u.role
}

// Is reports whether u has the given identity.
func (u User) Is(id kernel.ID) bool {
	return u.id == id
}
