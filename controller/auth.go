package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/model"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password, so
// a caller cannot probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidSignup wraps signup validation failures.
var ErrInvalidSignup = errors.New("invalid signup")

const bcryptCost = bcrypt.DefaultCost

func (c *controller) Signup(ctx context.Context, u *model.User, password string) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Email == "" {
		return fmt.Errorf("email must be provided: %w", ErrInvalidSignup)
	}
	if password == "" {
		return fmt.Errorf("password must be provided: %w", ErrInvalidSignup)
	}
	if len(password) > 72 {
		// bcrypt silently truncates longer inputs, reject them instead.
		return fmt.Errorf("password must be 72 bytes or fewer: %w", ErrInvalidSignup)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	u.PasswordHash = string(hash)

	return c.db.InsertUser(ctx, u)
}

func (c *controller) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := c.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
