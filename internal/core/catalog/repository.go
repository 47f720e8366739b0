package catalog

import "context"

// Repository はコース・評価テスト・月次推移の読み取り専用アクセスです。
type Repository interface {
	ListCourses(ctx context.Context, filter ListCoursesFilter) ([]*Course, error)
	FindCourse(ctx context.Context, id string) (*Course, error)
	ListAssessments(ctx context.Context) ([]*Assessment, error)
	FindAssessment(ctx context.Context, id string) (*Assessment, error)
	MonthlyTrend(ctx context.Context) ([]MonthlyTrend, error)
}

// ListCoursesFilter はコース一覧のフィルタです。空の項目は無条件です。
type ListCoursesFilter struct {
	Category string
	Level    Level
	Skill    string
}

// Matches はフィルタ条件に一致するかを判定します。
func (f ListCoursesFilter) Matches(c *Course) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.Skill != "" && !c.HasSkill(f.Skill) {
		return false
	}
	return true
}
