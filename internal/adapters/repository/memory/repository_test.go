package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/learning-dashboard/internal/adapters/sessionstore"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRepositories(t *testing.T) (*seed.Dataset, *Repositories) {
	t.Helper()

	ds, err := seed.Default()
	require.NoError(t, err)
	repos, err := FromDataset(ds, bcrypt.MinCost)
	require.NoError(t, err)
	return ds, repos
}

func TestLoginForEveryCredential(t *testing.T) {
	t.Parallel()

	ds, repos := newRepositories(t)
	users := user.NewService(repos.Users)
	ctx := context.Background()

	for _, rec := range ds.Users {
		mgr := session.NewManager(users, sessionstore.NewMemoryStore(), nil)
		s, err := mgr.Login(ctx, session.LoginInput{Username: rec.User.Username, Password: rec.Password})
		require.NoError(t, err, rec.User.Username)
		assert.Equal(t, rec.User, s.User)
	}
}

func TestLoginScenarios(t *testing.T) {
	t.Parallel()

	_, repos := newRepositories(t)
	mgr := session.NewManager(user.NewService(repos.Users), sessionstore.NewMemoryStore(), nil)
	ctx := context.Background()

	admin, err := mgr.Login(ctx, session.LoginInput{Username: "admin1", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.User.Role)

	_, err = mgr.Login(ctx, session.LoginInput{Username: "admin1", Password: "wrong"})
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	current, err := mgr.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, current.ID)

	require.NoError(t, mgr.Logout(ctx))
	_, err = mgr.Login(ctx, session.LoginInput{Username: "admin1", Password: "wrong"})
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	_, err = mgr.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	manager, err := mgr.Login(ctx, session.LoginInput{Username: "manager1", Password: "manager123"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, manager.User.Role)
	assert.Equal(t, []string{"emp1", "emp2", "emp3"}, manager.User.Employees)
}

func TestUserRepository(t *testing.T) {
	t.Parallel()

	_, repos := newRepositories(t)
	ctx := context.Background()

	u, err := repos.Users.FindByUsername(ctx, "emp4")
	require.NoError(t, err)
	assert.Equal(t, "manager2", u.Manager)

	_, err = repos.Users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	role := user.RoleManager
	managers, err := repos.Users.List(ctx, user.ListUsersFilter{Role: &role})
	require.NoError(t, err)
	require.Len(t, managers, 2)
	assert.Equal(t, "manager1", managers[0].Username)

	managers[0].Employees[0] = "mutated"
	again, err := repos.Users.FindByUsername(ctx, "manager1")
	require.NoError(t, err)
	assert.Equal(t, "emp1", again.Employees[0])

	cred, err := user.NewCredential(user.User{Username: "dup", Role: user.RoleEmployee}, "x", bcrypt.MinCost)
	require.NoError(t, err)
	_, err = NewUserRepository([]*user.Credential{cred, cred})
	assert.True(t, errors.Is(err, user.ErrDuplicateUsername))
}

func TestEmployeeRepository(t *testing.T) {
	t.Parallel()

	ds, repos := newRepositories(t)
	ctx := context.Background()

	departments, err := repos.Employees.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Software Development", "Data Analytics"}, departments)

	total := 0
	for _, d := range departments {
		list, next, err := repos.Employees.List(ctx, employee.ListEmployeesFilter{Department: d})
		require.NoError(t, err)
		assert.Empty(t, next)
		for _, e := range list {
			assert.Equal(t, d, e.Department)
		}
		total += len(list)
	}
	assert.Equal(t, len(ds.Employees), total)

	page, next, err := repos.Employees.List(ctx, employee.ListEmployeesFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, "4", next)

	_, err = repos.Employees.FindByUsername(ctx, "admin1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCatalogRepository(t *testing.T) {
	t.Parallel()

	_, repos := newRepositories(t)
	ctx := context.Background()

	backend, err := repos.Catalog.ListCourses(ctx, catalog.ListCoursesFilter{Category: "Backend"})
	require.NoError(t, err)
	assert.Len(t, backend, 2)

	_, err = repos.Catalog.FindCourse(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)

	a, err := repos.Catalog.FindAssessment(ctx, "react-assessment")
	require.NoError(t, err)
	assert.Equal(t, 75, a.PassingScore)

	trend, err := repos.Catalog.MonthlyTrend(ctx)
	require.NoError(t, err)
	assert.Len(t, trend, 6)
}
