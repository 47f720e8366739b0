// Package sessionstore は session.Store の実装 (ファイル・Redis・メモリ) を提供します。
package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ogurasousui/learning-dashboard/internal/core/session"
)

// FileStore はセッションを 1 ファイルに保存します。書き込みは一時ファイルからの rename で行います。
type FileStore struct {
	path string
}

// NewFileStore は FileStore を生成します。
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load は保存済みのセッションを読み込みます。
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, session.ErrNotPersisted
		}
		return nil, fmt.Errorf("sessionstore: read %s: %w", s.path, err)
	}
	return b, nil
}

// Save はセッションを書き込みます。
func (s *FileStore) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("sessionstore: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("sessionstore: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("sessionstore: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sessionstore: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sessionstore: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("sessionstore: rename to %s: %w", s.path, err)
	}
	return nil
}

// Delete はセッションファイルを削除します。
func (s *FileStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sessionstore: remove %s: %w", s.path, err)
	}
	return nil
}
