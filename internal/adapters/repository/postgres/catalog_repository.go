package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	pgdb "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
)

const (
	courseColumns     = `id, title, description, category, level, estimated_hours, skills, rating, enrolled_count, completion_rate`
	assessmentColumns = `id, title, description, category, difficulty, skills, passing_score, time_limit`
)

// CatalogRepository は PostgreSQL を利用したコースカタログの実装です。
type CatalogRepository struct {
	pool pgdb.Queryer
}

// NewCatalogRepository は CatalogRepository を生成します。
func NewCatalogRepository(pool pgdb.Queryer) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListCourses はフィルタに一致するコースをカタログ順で返します。
func (r *CatalogRepository) ListCourses(ctx context.Context, filter catalog.ListCoursesFilter) ([]*catalog.Course, error) {
	args := make([]any, 0, 3)
	conditions := make([]string, 0, 3)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Level != "" {
		args = append(args, string(filter.Level))
		conditions = append(conditions, "level = $"+strconv.Itoa(len(args)))
	}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		conditions = append(conditions, "$"+strconv.Itoa(len(args))+" = ANY(skills)")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "\n         WHERE " + strings.Join(conditions, " AND ")
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+courseColumns+`
          FROM courses`+whereClause+`
         ORDER BY position
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*catalog.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FindCourse は ID でコースを取得します。
func (r *CatalogRepository) FindCourse(ctx context.Context, id string) (*catalog.Course, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+courseColumns+`
          FROM courses
         WHERE id = $1
    `, id)
	return scanCourse(row)
}

// ListAssessments は設問を含む評価テストを返します。
func (r *CatalogRepository) ListAssessments(ctx context.Context) ([]*catalog.Assessment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+assessmentColumns+`
          FROM assessments
         ORDER BY position
    `)
	if err != nil {
		return nil, err
	}

	var out []*catalog.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachQuestions(ctx, exec, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAssessment は ID で評価テストを取得します。
func (r *CatalogRepository) FindAssessment(ctx context.Context, id string) (*catalog.Assessment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+assessmentColumns+`
          FROM assessments
         WHERE id = $1
    `, id)

	a, err := scanAssessment(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachQuestions(ctx, exec, []*catalog.Assessment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// MonthlyTrend は月次推移を返します。
func (r *CatalogRepository) MonthlyTrend(ctx context.Context) ([]catalog.MonthlyTrend, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT month, completed, started
          FROM monthly_trend
         ORDER BY position
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.MonthlyTrend
	for rows.Next() {
		var m catalog.MonthlyTrend
		if err := rows.Scan(&m.Month, &m.Completed, &m.Started); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) attachQuestions(ctx context.Context, exec pgdb.Queryer, list []*catalog.Assessment) error {
	if len(list) == 0 {
		return nil
	}

	byID := make(map[string]*catalog.Assessment, len(list))
	ids := make([]string, 0, len(list))
	for _, a := range list {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rows, err := exec.Query(ctx, `
        SELECT assessment_id, question_id, text, options, correct_answer, difficulty, skill
          FROM assessment_questions
         WHERE assessment_id = ANY($1)
         ORDER BY assessment_id, position
    `, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner string
			q     catalog.Question
		)
		if err := rows.Scan(&owner, &q.ID, &q.Text, &q.Options, &q.CorrectAnswer, (*string)(&q.Difficulty), &q.Skill); err != nil {
			return err
		}
		if a, ok := byID[owner]; ok {
			a.Questions = append(a.Questions, q)
		}
	}
	return rows.Err()
}

func scanCourse(row pgx.Row) (*catalog.Course, error) {
	var c catalog.Course
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		(*string)(&c.Level),
		&c.EstimatedHours,
		&c.Skills,
		&c.Rating,
		&c.EnrolledCount,
		&c.CompletionRate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func scanAssessment(row pgx.Row) (*catalog.Assessment, error) {
	var a catalog.Assessment
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Category,
		(*string)(&a.Difficulty),
		&a.Skills,
		&a.PassingScore,
		&a.TimeLimit,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &a, nil
}
