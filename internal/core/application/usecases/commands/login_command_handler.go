package commands

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vaibhav-crux/delivery-management-system/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for a wrong username/password pair.
// A nonexistent username maps to the same error so the API does not leak
// which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Mint(userID string, now time.Time) (string, error)
}

// LoginCommandHandler authenticates a user and issues an access token.
// The first successful login of a Pending account activates it.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     TokenIssuer
	now        func() time.Time
}

// NewLoginCommandHandler creates a handler for authentication.
func NewLoginCommandHandler(uowFactory UserUoWFactory, tokens TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		now:        time.Now,
	}
}

// Handle processes the login command and returns a signed access token.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword()), []byte(cmd.Password())); err != nil {
		return "", ErrInvalidCredentials
	}

	if err = user.RecordLogin(); err != nil {
		return "", err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	signed, err := h.tokens.Mint(user.ID().String(), h.now())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return signed, nil
}
