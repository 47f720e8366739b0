package user

import "context"

// Repository は認証テーブルの読み取り専用アクセスです。
type Repository interface {
	FindCredential(ctx context.Context, username string) (*Credential, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*User, error)
}

// ListUsersFilter は一覧取得用フィルタです。
type ListUsersFilter struct {
	Role *Role
}
