package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// NewCredential は平文パスワードをハッシュ化して Credential を生成します。
// cost に 0 を渡すと bcrypt.DefaultCost を使います。
func NewCredential(u User, password string, cost int) (*Credential, error) {
	if u.Username == "" {
		return nil, ErrInvalidUsername
	}
	if !u.Role.IsValid() {
		return nil, fmt.Errorf("%s: %w", u.Username, ErrInvalidRole)
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("user: hash password for %s: %w", u.Username, err)
	}

	return &Credential{User: u.Clone(), PasswordHash: hash}, nil
}

// Matches はパスワードが一致するかを返します。
func (c *Credential) Matches(password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
