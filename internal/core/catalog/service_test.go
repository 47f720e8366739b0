package catalog

import (
	"context"
	"errors"
	"testing"
)

type fakeCatalogRepo struct {
	courses     []*Course
	assessments []*Assessment
	trend       []MonthlyTrend
}

func (r *fakeCatalogRepo) ListCourses(_ context.Context, filter ListCoursesFilter) ([]*Course, error) {
	var out []*Course
	for _, c := range r.courses {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindCourse(_ context.Context, id string) (*Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, ErrCourseNotFound
}

func (r *fakeCatalogRepo) ListAssessments(_ context.Context) ([]*Assessment, error) {
	out := make([]*Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *fakeCatalogRepo) FindAssessment(_ context.Context, id string) (*Assessment, error) {
	for _, a := range r.assessments {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, ErrAssessmentNotFound
}

func (r *fakeCatalogRepo) MonthlyTrend(_ context.Context) ([]MonthlyTrend, error) {
	return append([]MonthlyTrend(nil), r.trend...), nil
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		courses: []*Course{
			{ID: "js-fundamentals", Category: "Programming", Level: LevelBeginner, Skills: []string{"JavaScript"}},
			{ID: "react-basics", Category: "Frontend", Level: LevelBeginner, Skills: []string{"React", "JSX"}},
			{ID: "advanced-react", Category: "Frontend", Level: LevelAdvanced, Skills: []string{"React", "Hooks"}},
		},
		assessments: []*Assessment{
			{
				ID:           "mixed",
				PassingScore: 70,
				Questions: []Question{
					{ID: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1, Skill: "JavaScript"},
					{ID: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2, Skill: "JavaScript"},
					{ID: "q3", Options: []string{"a", "b"}, CorrectAnswer: 0, Skill: "React"},
				},
			},
		},
		trend: []MonthlyTrend{{Month: "Aug", Completed: 45, Started: 67}},
	}
}

func TestServiceListCourses(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCatalogRepo(), nil)
	ctx := context.Background()

	all, err := svc.ListCourses(ctx, ListCoursesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(all))
	}

	frontend, err := svc.ListCourses(ctx, ListCoursesInput{Category: "Frontend", Level: "Advanced"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frontend) != 1 || frontend[0].ID != "advanced-react" {
		t.Fatalf("unexpected filter result: %+v", frontend)
	}

	react, err := svc.ListCourses(ctx, ListCoursesInput{Skill: "React"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(react) != 2 {
		t.Fatalf("expected 2 react courses, got %d", len(react))
	}

	if _, err := svc.ListCourses(ctx, ListCoursesInput{Level: "expert"}); !errors.Is(err, ErrInvalidCourse) {
		t.Fatalf("expected ErrInvalidCourse, got %v", err)
	}
}

func TestServiceGetCourse(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCatalogRepo(), nil)
	if _, err := svc.GetCourse(context.Background(), GetCourseInput{ID: " "}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetCourse(context.Background(), GetCourseInput{ID: "missing"}); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	c, err := svc.GetCourse(context.Background(), GetCourseInput{ID: "react-basics"})
	if err != nil || c.ID != "react-basics" {
		t.Fatalf("unexpected result: %+v %v", c, err)
	}
}

func TestServiceAssessmentsHideCorrectAnswers(t *testing.T) {
	t.Parallel()

	repo := newFakeCatalogRepo()
	svc := NewService(repo, nil)

	list, err := svc.ListAssessments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetAssessment(context.Background(), GetAssessmentInput{ID: "mixed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range append(list, got) {
		for _, q := range a.Questions {
			if q.CorrectAnswer != -1 {
				t.Fatalf("question %s leaked its answer", q.ID)
			}
		}
	}
	if repo.assessments[0].Questions[0].CorrectAnswer != 1 {
		t.Fatal("redaction mutated the repository copy")
	}
}

func TestServiceSubmitAssessment(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCatalogRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		answers    []int
		wantScore  int
		wantPassed bool
		wantSkills map[string]int
		wantErr    error
	}{
		{name: "all correct", answers: []int{1, 2, 0}, wantScore: 100, wantPassed: true, wantSkills: map[string]int{"JavaScript": 100, "React": 100}},
		{name: "two of three", answers: []int{1, 0, 0}, wantScore: 67, wantPassed: false, wantSkills: map[string]int{"JavaScript": 50, "React": 100}},
		{name: "none", answers: []int{0, 0, 1}, wantScore: 0, wantSkills: map[string]int{"JavaScript": 0, "React": 0}},
		{name: "too few answers", answers: []int{1}, wantErr: ErrAnswerCountMismatch},
		{name: "answer out of range", answers: []int{1, 3, 0}, wantErr: ErrInvalidAnswer},
		{name: "negative answer", answers: []int{-1, 2, 0}, wantErr: ErrInvalidAnswer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := svc.SubmitAssessment(ctx, SubmitAssessmentInput{AssessmentID: "mixed", Answers: tt.answers})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Score != tt.wantScore || res.Passed != tt.wantPassed {
				t.Fatalf("unexpected result: %+v", res)
			}
			if len(res.SkillScores) != len(tt.wantSkills) {
				t.Fatalf("unexpected skill scores: %+v", res.SkillScores)
			}
			for _, s := range res.SkillScores {
				if tt.wantSkills[s.Skill] != s.Score {
					t.Fatalf("skill %s: expected %d, got %d", s.Skill, tt.wantSkills[s.Skill], s.Score)
				}
			}
		})
	}

	if _, err := svc.SubmitAssessment(ctx, SubmitAssessmentInput{AssessmentID: "missing"}); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

func TestServiceMonthlyTrend(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeCatalogRepo(), nil)
	trend, err := svc.MonthlyTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend) != 1 || trend[0].Month != "Aug" {
		t.Fatalf("unexpected trend: %+v", trend)
	}
}

func TestValidateAssessment(t *testing.T) {
	t.Parallel()

	valid := newFakeCatalogRepo().assessments[0]
	if err := ValidateAssessment(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	broken := valid.Clone()
	broken.Questions[0].CorrectAnswer = 5
	if err := ValidateAssessment(broken); !errors.Is(err, ErrInvalidAssessment) {
		t.Fatalf("expected ErrInvalidAssessment, got %v", err)
	}

	dup := valid.Clone()
	dup.Questions[1].ID = "q1"
	if err := ValidateAssessment(dup); !errors.Is(err, ErrInvalidAssessment) {
		t.Fatalf("expected ErrInvalidAssessment for duplicate question, got %v", err)
	}

	if err := ValidateCourse(&Course{ID: "x", Level: "expert"}); !errors.Is(err, ErrInvalidCourse) {
		t.Fatalf("expected ErrInvalidCourse, got %v", err)
	}
}
