package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Authenticator は資格情報を検証します。user.Service が実装します。
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*user.User, error)
}

// UseCase はセッションユースケースの公開インターフェースです。
type UseCase interface {
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*Session, error)
}

// LoginInput はログイン時の入力です。
type LoginInput struct {
	Username string
	Password string
}

// Manager はアクティブセッションを所有し、Store と同期させます。
type Manager struct {
	auth  Authenticator
	store Store
	clock Clock
	newID func() string

	mu     sync.RWMutex
	active *Session
}

// NewManager は Manager を生成します。起動時には Restore を呼び出してください。
func NewManager(auth Authenticator, store Store, clock Clock) *Manager {
	if clock == nil {
		clock = realClock{}
	}
	return &Manager{
		auth:  auth,
		store: store,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Login は資格情報が一致した場合にセッションを作成し、永続化してからアクティブにします。
// 失敗時は既存のセッションを変更しません。
func (m *Manager) Login(ctx context.Context, in LoginInput) (*Session, error) {
	u, err := m.auth.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("session: authenticate: %w", err)
	}

	now := m.clock.Now()
	s := &Session{
		ID:        m.newID(),
		User:      u.Clone(),
		CreatedAt: now,
	}

	data, err := Encode(s, now)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("session: persist: %w", err)
	}
	m.active = s

	return s.clone(), nil
}

// Logout は永続化データを削除してからメモリ上のセッションを破棄します。何度呼んでも同じ結果になります。
// 削除に失敗した場合はアクティブセッションを残します。
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		return fmt.Errorf("session: delete persisted: %w", err)
	}
	m.active = nil
	return nil
}

// Current はアクティブセッションを返します。
func (m *Manager) Current(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active == nil {
		return nil, ErrNoSession
	}
	return m.active.clone(), nil
}

// Restore は永続化されたセッションを読み込みます。
// 保存データが無ければ (nil, nil)、壊れている・バージョンが異なる場合はエラーを返し、
// いずれの場合もアクティブセッションは空のままです。
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	data, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotPersisted) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: load persisted: %w", err)
	}

	s, err := Decode(data)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.active = s
	m.mu.Unlock()

	return s.clone(), nil
}
