package commands

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
)

// minPasswordLength is the weakest password signup accepts.
const minPasswordLength = 8

// SignUpCommand represents a request to register an API account.
// The password travels in plain text only this far; the handler stores a
// bcrypt hash.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register an account.
func NewSignUpCommand(username, email, password string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// Username returns the requested login name.
func (c SignUpCommand) Username() string {
	return c.username
}

// Email returns the account email.
func (c SignUpCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to be hashed.
func (c SignUpCommand) Password() string {
	return c.password
}

func (c *SignUpCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *SignUpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
