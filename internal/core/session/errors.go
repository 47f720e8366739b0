package session

import (
	"errors"

	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

var (
	// ErrInvalidCredentials はログイン失敗時に返却されます。理由は区別しません。
	ErrInvalidCredentials = user.ErrInvalidCredentials
	// ErrNoSession はアクティブなセッションが無い場合に返却されます。
	ErrNoSession = errors.New("session: no active session")
	// ErrNotPersisted は永続化されたセッションが存在しない場合に Store が返却します。
	ErrNotPersisted = errors.New("session: nothing persisted")
	// ErrCorruptSession は永続化データを解釈できない場合に返却されます。
	ErrCorruptSession = errors.New("session: corrupt persisted session")
	// ErrUnsupportedVersion は永続化データのバージョンが未知の場合に返却されます。
	ErrUnsupportedVersion = errors.New("session: unsupported envelope version")
)
