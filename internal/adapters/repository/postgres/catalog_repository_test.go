package postgres

import (
	"context"
	"testing"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	courseColumnNames = []string{"id", "title", "description", "category", "level", "estimated_hours", "skills",
		"rating", "enrolled_count", "completion_rate"}
	assessmentColumnNames = []string{"id", "title", "description", "category", "difficulty", "skills", "passing_score", "time_limit"}
	questionColumnNames   = []string{"assessment_id", "question_id", "text", "options", "correct_answer", "difficulty", "skill"}
)

func TestCatalogRepository_ListCourses_Filters(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE category = \$1 AND level = \$2 AND \$3 = ANY\(skills\) ORDER BY position`).
		WithArgs("Programming", "advanced", "React").
		WillReturnRows(pgxmock.NewRows(courseColumnNames).
			AddRow("advanced-react", "Advanced React Patterns", "Hooks and patterns", "Programming", "advanced",
				30.0, []string{"React", "JavaScript"}, 4.8, 1250, 78))

	list, err := repo.ListCourses(context.Background(), catalog.ListCoursesFilter{
		Category: "Programming",
		Level:    catalog.LevelAdvanced,
		Skill:    "React",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "advanced-react", list[0].ID)
	assert.Equal(t, catalog.LevelAdvanced, list[0].Level)
	assert.InDelta(t, 4.8, list[0].Rating, 1e-9)
	assert.Equal(t, 1250, list[0].EnrolledCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindCourse_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(courseColumnNames))

	_, err := repo.FindCourse(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrCourseNotFound)
}

func TestCatalogRepository_FindAssessment_AttachesQuestions(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM assessments WHERE id = \$1`).
		WithArgs("js-fundamentals").
		WillReturnRows(pgxmock.NewRows(assessmentColumnNames).
			AddRow("js-fundamentals", "JavaScript Fundamentals", "Core concepts", "Programming", "medium",
				[]string{"JavaScript"}, 70, 30))
	mock.ExpectQuery(`SELECT (.+) FROM assessment_questions WHERE assessment_id = ANY\(\$1\) ORDER BY assessment_id, position`).
		WithArgs([]string{"js-fundamentals"}).
		WillReturnRows(pgxmock.NewRows(questionColumnNames).
			AddRow("js-fundamentals", "q1", "typeof null?", []string{"null", "object", "undefined"}, 1, "easy", "JavaScript").
			AddRow("js-fundamentals", "q2", "Closure?", []string{"a", "b"}, 0, "medium", "JavaScript"))

	a, err := repo.FindAssessment(context.Background(), "js-fundamentals")
	require.NoError(t, err)
	assert.Equal(t, 70, a.PassingScore)
	assert.Equal(t, 30, a.TimeLimit)
	require.Len(t, a.Questions, 2)
	assert.Equal(t, 1, a.Questions[0].CorrectAnswer)
	assert.Len(t, a.Questions[0].Options, 3)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindAssessment_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(`FROM assessments WHERE id = \$1`).
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows(assessmentColumnNames))

	_, err := repo.FindAssessment(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrAssessmentNotFound)
}

func TestCatalogRepository_MonthlyTrend(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := NewCatalogRepository(mock)

	mock.ExpectQuery(`SELECT month, completed, started FROM monthly_trend ORDER BY position`).
		WithArgs().
		WillReturnRows(pgxmock.NewRows([]string{"month", "completed", "started"}).
			AddRow("Jan", 45, 60).
			AddRow("Feb", 52, 58))

	trend, err := repo.MonthlyTrend(context.Background())
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, catalog.MonthlyTrend{Month: "Feb", Completed: 52, Started: 58}, trend[1])
}
