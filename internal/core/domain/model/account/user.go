package account

import (
	"errors"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/guard"
)

var (
	// ErrUsernameIsRequired is returned when creating a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrEmailIsRequired is returned when creating a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when creating a user without a
	// hashed password.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("hashedPassword")
	// ErrUserIsNotActive is returned when an inactive account attempts to
	// authenticate.
	ErrUserIsNotActive = errors.New("user account is not active")
	// ErrUserIsNotConstructed is returned when using an improperly
	// initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root for an account that can call the API.
// Passwords are stored as bcrypt hashes computed by the application layer;
// the aggregate only carries the hash.
type User struct {
	id             kernel.UUID
	username       string
	email          string
	hashedPassword string
	status         Status
	guard          guard.ConstructorGuard
}

// NewUser registers a new Pending account.
func NewUser(id kernel.UUID, username, email, hashedPassword string) (*User, error) {
	u := &User{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setHashedPassword(hashedPassword),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, username, email, hashedPassword string, status Status) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setHashedPassword(hashedPassword),
		u.setStatus(status),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the account email.
func (u *User) Email() string {
	return u.email
}

// HashedPassword returns the bcrypt hash of the account password.
func (u *User) HashedPassword() string {
	return u.hashedPassword
}

// Status returns the current account status.
func (u *User) Status() Status {
	return u.status
}

// IsActive reports whether the account may authenticate. Pending accounts
// may authenticate; their first login activates them.
func (u *User) IsActive() bool {
	return u.status == Pending || u.status == Active
}

// RecordLogin marks a successful authentication. A Pending account becomes
// Active on its first login; an Inactive account cannot log in.
func (u *User) RecordLogin() error {
	if u.status == Inactive {
		return ErrUserIsNotActive
	}
	u.status = Active
	return nil
}

// Deactivate marks the account deleted. Idempotent.
func (u *User) Deactivate() {
	u.status = Inactive
}

// Reactivate returns a deleted account to Pending with a fresh password
// hash. Signing up with the username of an Inactive account reuses the
// account instead of creating a duplicate.
func (u *User) Reactivate(hashedPassword string) error {
	if u.status != Inactive {
		return errs.NewValueIsInvalidError("only an inactive user can be reactivated")
	}
	if err := u.setHashedPassword(hashedPassword); err != nil {
		return err
	}
	u.status = Pending
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setHashedPassword(hashedPassword string) error {
	if hashedPassword == "" {
		return ErrPasswordHashIsRequired
	}
	u.hashedPassword = hashedPassword
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
