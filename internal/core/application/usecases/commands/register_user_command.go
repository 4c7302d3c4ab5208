package commands

import (
	"errors"

	"msosihub/internal/core/domain/model/user"
	"msosihub/internal/pkg/errs"
	"msosihub/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new user account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string
	role  user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
func NewRegisterUserCommand(name, email, phone string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the new user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the new user's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the new user's contact number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the role the account is created with.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
