package postgres

import (
	"context"
	"fmt"

	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	pgdb "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
)

// seedTables は投入前に空にするテーブルです。
const seedTables = `users, employee_profiles, learning_path_items, courses, assessments, assessment_questions, monthly_trend`

type readWriteRunner interface {
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// Seeder はデータセットをテーブルへ投入します。
type Seeder struct {
	pool pgdb.Queryer
	tx   readWriteRunner
}

// NewSeeder は Seeder を生成します。tx が nil の場合はトランザクションを張りません。
func NewSeeder(pool pgdb.Queryer, tx readWriteRunner) *Seeder {
	return &Seeder{pool: pool, tx: tx}
}

// Seed は既存の行を削除し、データセットを 1 トランザクションで投入します。
// creds は ds.Users と同じ順序でハッシュ化済みの認証情報です。
func (s *Seeder) Seed(ctx context.Context, ds *seed.Dataset, creds []*user.Credential) error {
	if ds == nil {
		return fmt.Errorf("postgres: seed: %w", seed.ErrInvalidDataset)
	}
	if len(creds) != len(ds.Users) {
		return fmt.Errorf("postgres: seed: %d credentials for %d users: %w", len(creds), len(ds.Users), seed.ErrInvalidDataset)
	}

	run := func(ctx context.Context) error {
		exec := pgdb.QueryerFromContext(ctx, s.pool)
		if _, err := exec.Exec(ctx, `TRUNCATE `+seedTables+` CASCADE`); err != nil {
			return fmt.Errorf("postgres: seed truncate: %w", err)
		}
		if err := seedUsers(ctx, exec, creds); err != nil {
			return err
		}
		if err := seedProfiles(ctx, exec, ds); err != nil {
			return err
		}
		if err := seedCatalog(ctx, exec, ds); err != nil {
			return err
		}
		return nil
	}

	if s.tx == nil {
		return run(ctx)
	}
	return s.tx.WithinReadWrite(ctx, run)
}

func seedUsers(ctx context.Context, exec pgdb.Queryer, creds []*user.Credential) error {
	for i, c := range creds {
		u := c.User
		if _, err := exec.Exec(ctx, `
            INSERT INTO users (username, position, password_hash, role, full_name, department, email, manager, reports)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `, u.Username, i, c.PasswordHash, string(u.Role), u.FullName, u.Department, u.Email, nullable(u.Manager), textArray(u.Employees)); err != nil {
			return fmt.Errorf("postgres: seed user %s: %w", u.Username, err)
		}
	}
	return nil
}

func seedProfiles(ctx context.Context, exec pgdb.Queryer, ds *seed.Dataset) error {
	for i, e := range ds.Employees {
		scores := e.AssessmentScores
		if scores == nil {
			scores = map[string]int{}
		}
		if _, err := exec.Exec(ctx, `
            INSERT INTO employee_profiles (username, position, full_name, department, email, skills, current_level, target_level,
                                           completed_courses, in_progress_courses, assessment_scores, last_active)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        `, e.Username, i, e.FullName, e.Department, e.Email, textArray(e.Skills), e.CurrentLevel, e.TargetLevel,
			textArray(e.CompletedCourses), textArray(e.InProgressCourses), scores, e.LastActive); err != nil {
			return fmt.Errorf("postgres: seed profile %s: %w", e.Username, err)
		}

		for j, it := range e.LearningPath {
			if _, err := exec.Exec(ctx, `
                INSERT INTO learning_path_items (username, item_id, position, title, item_type, estimated_hours, status, progress, prerequisite, skills)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            `, e.Username, it.ID, j, it.Title, string(it.Type), it.EstimatedHours, string(it.Status), it.Progress, nullable(it.Prerequisite), textArray(it.Skills)); err != nil {
				return fmt.Errorf("postgres: seed path item %s/%s: %w", e.Username, it.ID, err)
			}
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, exec pgdb.Queryer, ds *seed.Dataset) error {
	for i, c := range ds.Courses {
		if _, err := exec.Exec(ctx, `
            INSERT INTO courses (id, position, title, description, category, level, estimated_hours, skills, rating, enrolled_count, completion_rate)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        `, c.ID, i, c.Title, c.Description, c.Category, string(c.Level), c.EstimatedHours, textArray(c.Skills), c.Rating, c.EnrolledCount, c.CompletionRate); err != nil {
			return fmt.Errorf("postgres: seed course %s: %w", c.ID, err)
		}
	}

	for i, a := range ds.Assessments {
		if _, err := exec.Exec(ctx, `
            INSERT INTO assessments (id, position, title, description, category, difficulty, skills, passing_score, time_limit)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `, a.ID, i, a.Title, a.Description, a.Category, string(a.Difficulty), textArray(a.Skills), a.PassingScore, a.TimeLimit); err != nil {
			return fmt.Errorf("postgres: seed assessment %s: %w", a.ID, err)
		}

		for j, q := range a.Questions {
			if _, err := exec.Exec(ctx, `
                INSERT INTO assessment_questions (assessment_id, question_id, position, text, options, correct_answer, difficulty, skill)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            `, a.ID, q.ID, j, q.Text, textArray(q.Options), q.CorrectAnswer, string(q.Difficulty), q.Skill); err != nil {
				return fmt.Errorf("postgres: seed question %s/%s: %w", a.ID, q.ID, err)
			}
		}
	}

	for i, m := range ds.Trend {
		if _, err := exec.Exec(ctx, `
            INSERT INTO monthly_trend (position, month, completed, started)
            VALUES ($1, $2, $3, $4)
        `, i, m.Month, m.Completed, m.Started); err != nil {
			return fmt.Errorf("postgres: seed trend %s: %w", m.Month, err)
		}
	}
	return nil
}

// nullable は空文字を NULL として渡します。
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// textArray は NOT NULL の配列列に nil を渡さないよう空スライスへ置き換えます。
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
