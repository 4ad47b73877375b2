package controller

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/YassineAssim23/eFantasyREPO/auth"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
)

const minPasswordLen = 8

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,24}$`)

func (c *controller) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-24 letters, numbers, or underscores", ErrValidation)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is not valid", ErrValidation)
	}

	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := c.db.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *controller) Login(ctx context.Context, username, password string) (string, error) {
	u, err := c.db.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := c.tokens.Generate(u.ID)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

func (c *controller) ValidateToken(token string) (int64, error) {
	return c.tokens.Validate(token)
}

func (c *controller) GetUser(ctx context.Context, idOrName string) (*model.User, error) {
	if id, err := strconv.ParseInt(idOrName, 10, 64); err == nil {
		return c.db.GetUser(ctx, id)
	}
	return c.db.GetUserByUsername(ctx, idOrName)
}

func (c *controller) DeleteUser(ctx context.Context, id int64) error {
	return c.db.DeleteUser(ctx, id)
}
