package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginCommand represents an authentication attempt.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command carrying login credentials.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
