package user

import "errors"

var (
	// ErrUserNotFound はユーザーが存在しない場合に返却されます。
	ErrUserNotFound = errors.New("user: not found")
	// ErrInvalidUsername はユーザー名が空の場合に返却されます。
	ErrInvalidUsername = errors.New("user: invalid username")
	// ErrInvalidRole はロールが不正な場合に返却されます。
	ErrInvalidRole = errors.New("user: invalid role")
	// ErrInvalidCredentials はユーザー名とパスワードの組が一致しない場合に返却されます。
	ErrInvalidCredentials = errors.New("user: invalid credentials")
	// ErrDuplicateUsername は認証テーブルに同名ユーザーがある場合に返却されます。
	ErrDuplicateUsername = errors.New("user: duplicate username")
)
