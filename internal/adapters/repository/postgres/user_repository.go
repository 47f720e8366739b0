package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	pgdb "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
)

const userColumns = `username, role, full_name, department, email, COALESCE(manager, ''), reports`

// UserRepository は PostgreSQL を利用した認証テーブルの実装です。
type UserRepository struct {
	pool pgdb.Queryer
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(pool pgdb.Queryer) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindCredential はユーザー名で認証情報を取得します。
func (r *UserRepository) FindCredential(ctx context.Context, username string) (*user.Credential, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`, password_hash
          FROM users
         WHERE username = $1
    `, username)

	var (
		u    user.User
		hash []byte
	)
	if err := row.Scan(userScanTargets(&u, &hash)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	normalizeUser(&u)
	return &user.Credential{User: u, PasswordHash: hash}, nil
}

// FindByUsername はユーザー名で公開ユーザーレコードを取得します。
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE username = $1
    `, username)

	found, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List はディレクトリ順でユーザーを返します。
func (r *UserRepository) List(ctx context.Context, filter user.ListUsersFilter) ([]*user.User, error) {
	var role *string
	if filter.Role != nil {
		v := string(*filter.Role)
		role = &v
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE ($1::text IS NULL OR role = $1)
         ORDER BY position
    `, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(userScanTargets(&u, nil)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	normalizeUser(&u)
	return &u, nil
}

func userScanTargets(u *user.User, hash *[]byte) []any {
	targets := []any{&u.Username, (*string)(&u.Role), &u.FullName, &u.Department, &u.Email, &u.Manager, &u.Employees}
	if hash != nil {
		targets = append(targets, hash)
	}
	return targets
}

// normalizeUser は空の部下リストを nil に揃えます。
func normalizeUser(u *user.User) {
	if len(u.Employees) == 0 {
		u.Employees = nil
	}
}
