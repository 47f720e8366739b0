package memory

import (
	"context"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
)

// CatalogRepository はコース・評価テスト・月次推移をメモリ上に保持します。
type CatalogRepository struct {
	courses     []*catalog.Course
	assessments []*catalog.Assessment
	trend       []catalog.MonthlyTrend
}

// NewCatalogRepository は CatalogRepository を生成します。
func NewCatalogRepository(courses []*catalog.Course, assessments []*catalog.Assessment, trend []catalog.MonthlyTrend) *CatalogRepository {
	r := &CatalogRepository{trend: append([]catalog.MonthlyTrend(nil), trend...)}
	for _, c := range courses {
		r.courses = append(r.courses, c.Clone())
	}
	for _, a := range assessments {
		r.assessments = append(r.assessments, a.Clone())
	}
	return r
}

// ListCourses はフィルタに一致するコースをカタログ順で返します。
func (r *CatalogRepository) ListCourses(_ context.Context, filter catalog.ListCoursesFilter) ([]*catalog.Course, error) {
	out := make([]*catalog.Course, 0, len(r.courses))
	for _, c := range r.courses {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

// FindCourse は ID でコースを取得します。
func (r *CatalogRepository) FindCourse(_ context.Context, id string) (*catalog.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, catalog.ErrCourseNotFound
}

// ListAssessments は評価テストを返します。
func (r *CatalogRepository) ListAssessments(_ context.Context) ([]*catalog.Assessment, error) {
	out := make([]*catalog.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, a.Clone())
	}
	return out, nil
}

// FindAssessment は ID で評価テストを取得します。
func (r *CatalogRepository) FindAssessment(_ context.Context, id string) (*catalog.Assessment, error) {
	for _, a := range r.assessments {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, catalog.ErrAssessmentNotFound
}

// MonthlyTrend は月次推移を返します。
func (r *CatalogRepository) MonthlyTrend(_ context.Context) ([]catalog.MonthlyTrend, error) {
	return append([]catalog.MonthlyTrend(nil), r.trend...), nil
}
