// Package memory はシードデータセットをそのまま保持する読み取り専用リポジトリです。
package memory

import (
	"context"

	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

// UserRepository は認証テーブルをメモリ上に保持します。
type UserRepository struct {
	order []*user.Credential
	index map[string]*user.Credential
}

// NewUserRepository は UserRepository を生成します。重複したユーザー名はエラーです。
func NewUserRepository(creds []*user.Credential) (*UserRepository, error) {
	r := &UserRepository{index: make(map[string]*user.Credential, len(creds))}
	for _, c := range creds {
		if _, dup := r.index[c.User.Username]; dup {
			return nil, user.ErrDuplicateUsername
		}
		r.index[c.User.Username] = c
		r.order = append(r.order, c)
	}
	return r, nil
}

// FindCredential はユーザー名で認証情報を取得します。
func (r *UserRepository) FindCredential(_ context.Context, username string) (*user.Credential, error) {
	c, ok := r.index[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &user.Credential{User: c.User.Clone(), PasswordHash: append([]byte(nil), c.PasswordHash...)}, nil
}

// FindByUsername はユーザー名で公開ユーザーレコードを取得します。
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	c, ok := r.index[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := c.User.Clone()
	return &u, nil
}

// List はディレクトリ順でユーザーを返します。
func (r *UserRepository) List(_ context.Context, filter user.ListUsersFilter) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.order))
	for _, c := range r.order {
		if filter.Role != nil && c.User.Role != *filter.Role {
			continue
		}
		u := c.User.Clone()
		out = append(out, &u)
	}
	return out, nil
}
