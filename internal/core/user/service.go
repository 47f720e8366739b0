package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service はユーザーディレクトリに関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase はユーザーユースケースの公開インターフェースです。
type UseCase interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetUser(ctx context.Context, in GetUserInput) (*User, error)
	ListUsers(ctx context.Context, in ListUsersInput) ([]*User, error)
	Managers(ctx context.Context) ([]*User, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetUserInput はユーザー取得時の入力です。
type GetUserInput struct {
	Username string
}

// ListUsersInput は一覧取得時の入力です。
type ListUsersInput struct {
	Role *Role
}

// Authenticate は認証テーブルと完全一致した場合のみユーザーを返します。
// 不一致の場合は理由を区別せず ErrInvalidCredentials を返します。
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}

	cred, err := s.repo.FindCredential(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := cred.Matches(password)
	if err != nil {
		return nil, fmt.Errorf("user: compare password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	u := cred.User.Clone()
	return &u, nil
}

// GetUser はユーザー名でユーザーを取得します。
func (s *Service) GetUser(ctx context.Context, in GetUserInput) (*User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, fmt.Errorf("username: %w", ErrInvalidUsername)
	}
	return s.repo.FindByUsername(ctx, in.Username)
}

// ListUsers はユーザーの一覧をディレクトリ順に返します。
func (s *Service) ListUsers(ctx context.Context, in ListUsersInput) ([]*User, error) {
	var rolePtr *Role
	if in.Role != nil {
		if !in.Role.IsValid() {
			return nil, ErrInvalidRole
		}
		role := *in.Role
		rolePtr = &role
	}
	return s.repo.List(ctx, ListUsersFilter{Role: rolePtr})
}

// Managers はマネージャーロールのユーザーを返します。
func (s *Service) Managers(ctx context.Context) ([]*User, error) {
	role := RoleManager
	return s.ListUsers(ctx, ListUsersInput{Role: &role})
}
