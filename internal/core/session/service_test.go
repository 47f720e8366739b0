package session

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type tableAuthenticator struct {
	users     map[string]user.User
	passwords map[string]string
}

func (a *tableAuthenticator) Authenticate(_ context.Context, username, password string) (*user.User, error) {
	u, ok := a.users[username]
	if !ok || a.passwords[username] != password {
		return nil, user.ErrInvalidCredentials
	}
	c := u.Clone()
	return &c, nil
}

type fakeStore struct {
	data      []byte
	saveErr   error
	loadErr   error
	deleteErr error
	deletes   int
	lastSaved []byte
}

func (s *fakeStore) Load(context.Context) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.data == nil {
		return nil, ErrNotPersisted
	}
	return append([]byte(nil), s.data...), nil
}

func (s *fakeStore) Save(_ context.Context, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data = append([]byte(nil), data...)
	s.lastSaved = s.data
	return nil
}

func (s *fakeStore) Delete(context.Context) error {
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.data = nil
	return nil
}

func newTestManager(store Store) *Manager {
	auth := &tableAuthenticator{
		users: map[string]user.User{
			"admin1":   {Username: "admin1", Role: user.RoleAdmin, FullName: "Sarah Johnson", Department: "IT Operations", Email: "sarah.johnson@hexaware.com"},
			"manager1": {Username: "manager1", Role: user.RoleManager, FullName: "Michael Chen", Employees: []string{"emp1", "emp2", "emp3"}},
		},
		passwords: map[string]string{"admin1": "admin123", "manager1": "manager123"},
	}
	m := NewManager(auth, store, &stubClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)})
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("session-%d", seq)
	}
	return m
}

func TestManager_Login_Success(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	s, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if s.User.Role != user.RoleAdmin || s.User.FullName != "Sarah Johnson" {
		t.Fatalf("unexpected user: %+v", s.User)
	}
	if len(store.data) == 0 {
		t.Fatal("expected session to be persisted")
	}

	current, err := m.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if !reflect.DeepEqual(s, current) {
		t.Fatalf("Current = %+v, want %+v", current, s)
	}
}

func TestManager_Login_FailureKeepsExistingSession(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	if _, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if store.data != nil {
		t.Fatalf("failed login must not persist, got %s", store.data)
	}

	before, err := m.Login(context.Background(), LoginInput{Username: "manager1", Password: "manager123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	persisted := append([]byte(nil), store.data...)

	if _, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	after, err := m.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("session changed: before %+v after %+v", before, after)
	}
	if string(persisted) != string(store.data) {
		t.Fatal("persisted session changed after failed login")
	}
	if !reflect.DeepEqual(after.User.Employees, []string{"emp1", "emp2", "emp3"}) {
		t.Fatalf("unexpected employees: %v", after.User.Employees)
	}
}

func TestManager_Login_PersistFailureKeepsState(t *testing.T) {
	t.Parallel()

	store := &fakeStore{saveErr: errors.New("disk full")}
	m := newTestManager(store)

	_, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "admin123"})
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected persist error, got %v", err)
	}

	if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestManager_Logout_Idempotent(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	if _, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "admin123"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := m.Logout(context.Background()); err != nil {
			t.Fatalf("Logout #%d returned error: %v", i+1, err)
		}
	}

	if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if store.data != nil {
		t.Fatal("expected persisted session to be deleted")
	}
	if store.deletes != 2 {
		t.Fatalf("expected 2 deletes, got %d", store.deletes)
	}
}

func TestManager_Logout_DeleteFailureKeepsSession(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	loggedIn, err := m.Login(context.Background(), LoginInput{Username: "admin1", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	store.deleteErr = errors.New("connection reset")
	err = m.Logout(context.Background())
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected delete error, got %v", err)
	}

	current, err := m.Current(context.Background())
	if err != nil {
		t.Fatalf("session must stay active after failed delete: %v", err)
	}
	if current.ID != loggedIn.ID {
		t.Fatalf("Current ID = %s, want %s", current.ID, loggedIn.ID)
	}
	if store.data == nil {
		t.Fatal("persisted session must remain")
	}

	store.deleteErr = nil
	if err := m.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestManager_Restore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	loggedIn, err := m.Login(context.Background(), LoginInput{Username: "manager1", Password: "manager123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	restarted := newTestManager(store)
	restored, err := restarted.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if restored == nil {
		t.Fatal("expected restored session")
	}

	if restored.ID != loggedIn.ID {
		t.Fatalf("restored ID = %s, want %s", restored.ID, loggedIn.ID)
	}
	if !reflect.DeepEqual(loggedIn.User, restored.User) {
		t.Fatalf("restored user = %+v, want %+v", restored.User, loggedIn.User)
	}
	if !loggedIn.CreatedAt.Equal(restored.CreatedAt) {
		t.Fatalf("restored CreatedAt = %v, want %v", restored.CreatedAt, loggedIn.CreatedAt)
	}

	current, err := restarted.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if !reflect.DeepEqual(restored.User, current.User) {
		t.Fatalf("current user = %+v, want %+v", current.User, restored.User)
	}
}

func TestManager_Restore_Absent(t *testing.T) {
	t.Parallel()

	m := newTestManager(&fakeStore{})

	s, err := m.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil session, got %+v", s)
	}

	if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestManager_Restore_FailsLoudly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want error
	}{
		{name: "not json", data: "{", want: ErrCorruptSession},
		{name: "legacy raw record", data: `{"username":"admin1","role":"admin"}`, want: ErrUnsupportedVersion},
		{name: "future version", data: `{"version":2,"session":{}}`, want: ErrUnsupportedVersion},
		{name: "missing body", data: `{"version":1}`, want: ErrCorruptSession},
		{name: "incomplete body", data: `{"version":1,"session":{"id":"x","user":{"username":"admin1","role":"root"}}}`, want: ErrCorruptSession},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := newTestManager(&fakeStore{data: []byte(tc.data)})
			if _, err := m.Restore(context.Background()); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			if _, err := m.Current(context.Background()); !errors.Is(err, ErrNoSession) {
				t.Fatalf("expected ErrNoSession, got %v", err)
			}
		})
	}
}

func TestManager_Restore_StoreError(t *testing.T) {
	t.Parallel()

	m := newTestManager(&fakeStore{loadErr: errors.New("connection refused")})

	_, err := m.Restore(context.Background())
	if err == nil || errors.Is(err, ErrNotPersisted) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	s := &Session{
		ID:        "abc",
		User:      user.User{Username: "emp1", Role: user.RoleEmployee, Manager: "manager1"},
		CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	data, err := Encode(s, s.CreatedAt)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(data), `"version":1`) {
		t.Fatalf("missing version in %s", data)
	}
	if strings.Contains(string(data), "password") {
		t.Fatalf("password must not be persisted: %s", data)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(s.User, decoded.User) {
		t.Fatalf("decoded user = %+v, want %+v", decoded.User, s.User)
	}
	if !s.CreatedAt.Equal(decoded.CreatedAt) {
		t.Fatalf("decoded CreatedAt = %v, want %v", decoded.CreatedAt, s.CreatedAt)
	}
}
