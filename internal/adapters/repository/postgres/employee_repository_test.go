package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileColumnNames = []string{"username", "full_name", "department", "email", "skills", "current_level", "target_level",
		"completed_courses", "in_progress_courses", "assessment_scores", "last_active"}
	pathColumnNames = []string{"username", "item_id", "title", "item_type", "estimated_hours", "status", "progress", "prerequisite", "skills"}
)

func profileRow(rows *pgxmock.Rows, username, department string, lastActive time.Time) *pgxmock.Rows {
	return rows.AddRow(username, username+" Name", department, username+"@company.com",
		[]string{"Python"}, "Intermediate", "Advanced", []string{}, []string{},
		map[string]int{"Python": 80}, lastActive)
}

func TestEmployeeRepository_FindByUsername(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	lastActive := time.Date(2024, 1, 15, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	mock.ExpectQuery(`SELECT (.+) FROM employee_profiles WHERE username = \$1`).
		WithArgs("emp4").
		WillReturnRows(profileRow(pgxmock.NewRows(profileColumnNames), "emp4", "Data Science", lastActive))

	mock.ExpectQuery(`SELECT (.+) FROM learning_path_items WHERE username = ANY\(\$1\) ORDER BY username, position`).
		WithArgs([]string{"emp4"}).
		WillReturnRows(pgxmock.NewRows(pathColumnNames).
			AddRow("emp4", "lp1", "Python Basics", "course", 20.0, "completed", 100, "", []string{"Python"}).
			AddRow("emp4", "lp2", "Pandas", "course", 25.0, "in-progress", 40, "lp1", []string{"Python", "Pandas"}))

	emp, err := repo.FindByUsername(context.Background(), "emp4")
	require.NoError(t, err)
	assert.Equal(t, "Data Science", emp.Department)
	assert.Equal(t, 80, emp.AssessmentScores["Python"])
	assert.True(t, emp.LastActive.Equal(lastActive))
	assert.Equal(t, time.UTC, emp.LastActive.Location(), "last active not normalized to UTC")
	require.Len(t, emp.LearningPath, 2)
	second := emp.LearningPath[1]
	assert.Equal(t, employee.StatusInProgress, second.Status)
	assert.Equal(t, "lp1", second.Prerequisite)
	assert.Equal(t, 40, second.Progress)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByUsername_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM employee_profiles`).
		WithArgs("admin1").
		WillReturnRows(pgxmock.NewRows(profileColumnNames))

	_, err := repo.FindByUsername(context.Background(), "admin1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_List_WithNextToken(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(profileColumnNames)
	profileRow(rows, "emp4", "Data Science", now)
	profileRow(rows, "emp5", "Data Science", now)

	mock.ExpectQuery(`SELECT (.+) FROM employee_profiles WHERE department = \$1 ORDER BY position LIMIT \$2 OFFSET \$3`).
		WithArgs("Data Science", 2, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`FROM learning_path_items`).
		WithArgs([]string{"emp4"}).
		WillReturnRows(pgxmock.NewRows(pathColumnNames))

	list, next, err := repo.List(context.Background(), employee.ListEmployeesFilter{Department: "Data Science", Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "emp4", list[0].Username)
	assert.Equal(t, "1", next)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_SearchEscapesPattern(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`FROM employee_profiles WHERE \(LOWER\(full_name\) LIKE \$1 OR LOWER\(department\) LIKE \$1\) AND username = ANY\(\$2\) ORDER BY position OFFSET \$3`).
		WithArgs(`%100\%%`, []string{"emp1", "emp2"}, 0).
		WillReturnRows(pgxmock.NewRows(profileColumnNames))

	list, next, err := repo.List(context.Background(), employee.ListEmployeesFilter{
		Search:    "100%",
		Usernames: []string{"emp1", "emp2"},
	})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Empty(t, next)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_RejectsNegativePaging(t *testing.T) {
	t.Parallel()

	repo := NewEmployeeRepository(newMock(t))

	_, _, err := repo.List(context.Background(), employee.ListEmployeesFilter{Limit: -1})
	assert.ErrorIs(t, err, employee.ErrInvalidPageSize)
	_, _, err = repo.List(context.Background(), employee.ListEmployeesFilter{Offset: -1})
	assert.ErrorIs(t, err, employee.ErrInvalidPageToken)
}

func TestEmployeeRepository_Departments(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`SELECT department FROM employee_profiles GROUP BY department ORDER BY MIN\(position\)`).
		WithArgs().
		WillReturnRows(pgxmock.NewRows([]string{"department"}).
			AddRow("Software Development").
			AddRow("Data Science"))

	got, err := repo.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Software Development", "Data Science"}, got)
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `a\_b\%c\\d`, escapeLike(`a_b%c\d`))
}
