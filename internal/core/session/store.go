package session

import "context"

// Store はセッションレコードを 1 件だけ保持する永続化の抽象です。
type Store interface {
	// Load は保存済みのバイト列を返します。存在しない場合は ErrNotPersisted を返します。
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	// Delete は存在しない場合もエラーにしません。
	Delete(ctx context.Context) error
}
