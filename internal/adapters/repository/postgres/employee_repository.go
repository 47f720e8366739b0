package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	pgdb "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
)

const profileColumns = `username, full_name, department, email, skills, current_level, target_level,
               completed_courses, in_progress_courses, assessment_scores, last_active`

// EmployeeRepository は PostgreSQL を利用した学習プロファイルの実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// FindByUsername はユーザー名でプロファイルと学習パスを取得します。
func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+profileColumns+`
          FROM employee_profiles
         WHERE username = $1
    `, username)

	emp, err := scanProfile(row)
	if err != nil {
		return nil, err
	}

	if err := r.attachPaths(ctx, exec, []*employee.Employee{emp}); err != nil {
		return nil, err
	}
	return emp, nil
}

// List は条件に一致するプロファイルをデータセット順で返します。Limit 0 は全件です。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if filter.Limit < 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	args := make([]any, 0, 5)
	conditions := make([]string, 0, 3)

	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, "department = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(strings.ToLower(filter.Search))+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		conditions = append(conditions, "(LOWER(full_name) LIKE "+placeholder+" OR LOWER(department) LIKE "+placeholder+")")
	}
	if filter.Usernames != nil {
		args = append(args, filter.Usernames)
		conditions = append(conditions, "username = ANY($"+strconv.Itoa(len(args))+")")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "\n         WHERE " + strings.Join(conditions, " AND ")
	}

	pagination := ""
	if filter.Limit > 0 {
		args = append(args, filter.Limit+1)
		pagination += "\n         LIMIT $" + strconv.Itoa(len(args))
	}
	args = append(args, filter.Offset)
	pagination += "\n        OFFSET $" + strconv.Itoa(len(args))

	query := `
        SELECT ` + profileColumns + `
          FROM employee_profiles` + whereClause + `
         ORDER BY position` + pagination + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}

	var list []*employee.Employee
	for rows.Next() {
		emp, err := scanProfile(rows)
		if err != nil {
			rows.Close()
			return nil, "", err
		}
		list = append(list, emp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	nextToken := ""
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	if err := r.attachPaths(ctx, exec, list); err != nil {
		return nil, "", err
	}
	if list == nil {
		list = []*employee.Employee{}
	}
	return list, nextToken, nil
}

// Departments は部署名を初出順で返します。
func (r *EmployeeRepository) Departments(ctx context.Context) ([]string, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT department
          FROM employee_profiles
         GROUP BY department
         ORDER BY MIN(position)
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) attachPaths(ctx context.Context, exec pgdb.Queryer, list []*employee.Employee) error {
	if len(list) == 0 {
		return nil
	}

	byName := make(map[string]*employee.Employee, len(list))
	names := make([]string, 0, len(list))
	for _, e := range list {
		byName[e.Username] = e
		names = append(names, e.Username)
	}

	rows, err := exec.Query(ctx, `
        SELECT username, item_id, title, item_type, estimated_hours, status, progress, COALESCE(prerequisite, ''), skills
          FROM learning_path_items
         WHERE username = ANY($1)
         ORDER BY username, position
    `, names)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner string
			item  employee.PathItem
		)
		if err := rows.Scan(
			&owner,
			&item.ID,
			&item.Title,
			(*string)(&item.Type),
			&item.EstimatedHours,
			(*string)(&item.Status),
			&item.Progress,
			&item.Prerequisite,
			&item.Skills,
		); err != nil {
			return err
		}
		if e, ok := byName[owner]; ok {
			e.LearningPath = append(e.LearningPath, item)
		}
	}
	return rows.Err()
}

func scanProfile(row pgx.Row) (*employee.Employee, error) {
	var (
		e          employee.Employee
		lastActive time.Time
	)
	if err := row.Scan(
		&e.Username,
		&e.FullName,
		&e.Department,
		&e.Email,
		&e.Skills,
		&e.CurrentLevel,
		&e.TargetLevel,
		&e.CompletedCourses,
		&e.InProgressCourses,
		&e.AssessmentScores,
		&lastActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	e.LastActive = lastActive.UTC()
	return &e, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
