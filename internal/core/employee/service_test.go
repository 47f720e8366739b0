package employee

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

type fakeEmployeeRepo struct {
	order     []*Employee
	listCalls int
	err       error
}

func newFakeEmployeeRepo(list ...*Employee) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{order: list}
}

func (r *fakeEmployeeRepo) FindByUsername(_ context.Context, username string) (*Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.order {
		if e.Username == username {
			return e.Clone(), nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Employee, string, error) {
	r.listCalls++
	if r.err != nil {
		return nil, "", r.err
	}
	var filtered []*Employee
	for _, e := range r.order {
		if filter.Matches(e) {
			filtered = append(filtered, e.Clone())
		}
	}
	page, next := Paginate(filtered, filter.Offset, filter.Limit)
	return page, next, nil
}

func (r *fakeEmployeeRepo) Departments(_ context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, e := range r.order {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out, nil
}

type countingTx struct {
	calls int
}

func (c *countingTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	c.calls++
	return fn(ctx)
}

func item(id string, status ItemStatus, progress int, prereq string) PathItem {
	return PathItem{
		ID:             id,
		Title:          "Title " + id,
		Type:           ItemTypeCourse,
		EstimatedHours: 10,
		Status:         status,
		Progress:       progress,
		Prerequisite:   prereq,
	}
}

func sampleEmployees() []*Employee {
	return []*Employee{
		{
			Username:         "emp1",
			FullName:         "Alex Rodriguez",
			Department:       "Software Development",
			CompletedCourses: []string{"react-basics"},
			AssessmentScores: map[string]int{"JavaScript": 78, "React": 65, "Node.js": 45},
			LearningPath: []PathItem{
				item("a", StatusCompleted, 100, ""),
				item("b", StatusInProgress, 60, "react-basics"),
				item("c", StatusNotStarted, 0, "b"),
			},
		},
		{
			Username:         "emp2",
			FullName:         "Emily Davis",
			Department:       "Software Development",
			AssessmentScores: map[string]int{"Python": 85},
			LearningPath: []PathItem{
				item("a", StatusCompleted, 100, ""),
				item("b", StatusInProgress, 75, ""),
			},
		},
		{
			Username:   "emp4",
			FullName:   "Lisa Wang",
			Department: "Data Analytics",
			LearningPath: []PathItem{
				item("a", StatusInProgress, 25, ""),
			},
		},
	}
}

func TestServiceGetProfile(t *testing.T) {
	t.Parallel()

	tx := &countingTx{}
	svc := NewService(newFakeEmployeeRepo(sampleEmployees()...), tx)

	got, err := svc.GetProfile(context.Background(), GetProfileInput{Username: " emp2 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Emily Davis" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if tx.calls != 1 {
		t.Fatalf("expected read-only transaction, got %d calls", tx.calls)
	}

	if _, err := svc.GetProfile(context.Background(), GetProfileInput{Username: "nobody"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.GetProfile(context.Background(), GetProfileInput{}); !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
}

func TestServiceListEmployeesDepartmentPartition(t *testing.T) {
	t.Parallel()

	all := sampleEmployees()
	svc := NewService(newFakeEmployeeRepo(all...), nil)
	ctx := context.Background()

	departments, err := svc.Departments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(departments, []string{"Software Development", "Data Analytics"}) {
		t.Fatalf("unexpected departments: %v", departments)
	}

	seen := map[string]int{}
	for _, dept := range departments {
		res, err := svc.ListEmployees(ctx, ListEmployeesInput{Department: dept})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, e := range res.Employees {
			if e.Department != dept {
				t.Fatalf("employee %s leaked into %s", e.Username, dept)
			}
			seen[e.Username]++
		}
	}
	for _, e := range all {
		if seen[e.Username] != 1 {
			t.Fatalf("employee %s seen %d times", e.Username, seen[e.Username])
		}
	}

	for _, dept := range []string{"all", "ALL", ""} {
		res, err := svc.ListEmployees(ctx, ListEmployeesInput{Department: dept})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Employees) != len(all) {
			t.Fatalf("department %q: expected %d employees, got %d", dept, len(all), len(res.Employees))
		}
	}
}

func TestServiceListEmployeesSearchAndPaging(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(sampleEmployees()...), nil)
	ctx := context.Background()

	res, err := svc.ListEmployees(ctx, ListEmployeesInput{Search: "DAVIS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Employees) != 1 || res.Employees[0].Username != "emp2" {
		t.Fatalf("unexpected search result: %+v", res.Employees)
	}

	res, err = svc.ListEmployees(ctx, ListEmployeesInput{Search: "analytics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Employees) != 1 || res.Employees[0].Username != "emp4" {
		t.Fatalf("expected department match, got %+v", res.Employees)
	}

	res, err = svc.ListEmployees(ctx, ListEmployeesInput{PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Employees) != 2 || res.NextPageToken != "2" {
		t.Fatalf("unexpected first page: %d %q", len(res.Employees), res.NextPageToken)
	}
	res, err = svc.ListEmployees(ctx, ListEmployeesInput{PageSize: 2, PageToken: res.NextPageToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Employees) != 1 || res.NextPageToken != "" {
		t.Fatalf("unexpected second page: %d %q", len(res.Employees), res.NextPageToken)
	}

	res, err = svc.ListEmployees(ctx, ListEmployeesInput{Usernames: []string{"emp4", "emp1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Employees) != 2 || res.Employees[0].Username != "emp1" {
		t.Fatalf("unexpected username filter result: %+v", res.Employees)
	}

	if _, err := svc.ListEmployees(ctx, ListEmployeesInput{PageSize: maxListPageSize + 1}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := svc.ListEmployees(ctx, ListEmployeesInput{PageToken: "-1"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestServiceGroupByDepartment(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(sampleEmployees()...), nil)
	groups, err := svc.GroupByDepartment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Department != "Software Development" || len(groups[0].Employees) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Department != "Data Analytics" || len(groups[1].Employees) != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestServiceRepositoryError(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.err = errors.New("boom")
	svc := NewService(repo, nil)

	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestOverallProgressIsMean(t *testing.T) {
	t.Parallel()

	for _, e := range sampleEmployees() {
		sum := 0
		for _, it := range e.LearningPath {
			sum += it.Progress
		}
		want := float64(sum) / float64(len(e.LearningPath))
		got := e.OverallProgress()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("%s: expected %f, got %f", e.Username, want, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("%s: progress out of range: %f", e.Username, got)
		}
	}

	empty := &Employee{}
	if empty.OverallProgress() != 0 {
		t.Fatalf("expected 0 for empty path")
	}
}

func TestDerivedStatistics(t *testing.T) {
	t.Parallel()

	e := sampleEmployees()[0]

	counts := e.CountByStatus()
	if counts != (StatusCounts{Completed: 1, InProgress: 1, NotStarted: 1}) || counts.Total() != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if got := e.CompletionRatio(); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Fatalf("unexpected completion ratio: %f", got)
	}
	if got := e.SkillGaps(LearnerGapThreshold); !reflect.DeepEqual(got, []string{"Node.js", "React"}) {
		t.Fatalf("unexpected skill gaps: %v", got)
	}
	if got := e.RemainingHours(); math.Abs(got-14) > 1e-9 {
		t.Fatalf("unexpected remaining hours: %f", got)
	}
	if got := e.PrerequisiteTitle(e.LearningPath[2]); got != "Title b" {
		t.Fatalf("unexpected prerequisite title: %q", got)
	}
	if got := e.PrerequisiteTitle(e.LearningPath[1]); got != "react-basics" {
		t.Fatalf("unexpected external prerequisite: %q", got)
	}
}

func TestRiskLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress int
		scores   map[string]int
		want     RiskLevel
	}{
		{name: "low progress", progress: 20, want: RiskHigh},
		{name: "many gaps", progress: 90, scores: map[string]int{"a": 10, "b": 10, "c": 10, "d": 10}, want: RiskHigh},
		{name: "mid progress", progress: 50, want: RiskMedium},
		{name: "two gaps", progress: 90, scores: map[string]int{"a": 10, "b": 10}, want: RiskMedium},
		{name: "healthy", progress: 80, scores: map[string]int{"a": 10, "b": 90}, want: RiskLow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := &Employee{
				AssessmentScores: tt.scores,
				LearningPath:     []PathItem{item("x", StatusInProgress, tt.progress, "")},
			}
			if got := e.RiskLevel(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	recent := &Employee{LastActive: now.Add(-48 * time.Hour)}
	stale := &Employee{LastActive: now.Add(-8 * 24 * time.Hour)}

	if !recent.IsActive(now, ActiveWindow) {
		t.Fatal("expected recent employee to be active")
	}
	if stale.IsActive(now, ActiveWindow) {
		t.Fatal("expected stale employee to be inactive")
	}
}

func TestStages(t *testing.T) {
	t.Parallel()

	statuses := func(p int) []StageStatus {
		e := &Employee{LearningPath: []PathItem{item("x", StatusInProgress, p, "")}}
		var out []StageStatus
		for _, s := range e.Stages() {
			out = append(out, s.Status)
		}
		return out
	}

	if got := statuses(0); !reflect.DeepEqual(got, []StageStatus{StageCompleted, StageCurrent, StagePending, StagePending, StagePending}) {
		t.Fatalf("unexpected stages at 0: %v", got)
	}
	if got := statuses(10); !reflect.DeepEqual(got, []StageStatus{StageCompleted, StageCompleted, StageCurrent, StagePending, StagePending}) {
		t.Fatalf("unexpected stages at 10: %v", got)
	}
	if got := statuses(50); !reflect.DeepEqual(got, []StageStatus{StageCompleted, StageCompleted, StageCompleted, StageCurrent, StagePending}) {
		t.Fatalf("unexpected stages at 50: %v", got)
	}
	if got := statuses(95); !reflect.DeepEqual(got, []StageStatus{StageCompleted, StageCompleted, StageCompleted, StageCurrent, StageCurrent}) {
		t.Fatalf("unexpected stages at 95: %v", got)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(e *Employee)
		wantErr error
	}{
		{name: "valid", mutate: func(*Employee) {}},
		{name: "duplicate id", mutate: func(e *Employee) {
			e.LearningPath = append(e.LearningPath, item("a", StatusNotStarted, 0, ""))
		}, wantErr: ErrDuplicateItem},
		{name: "progress over 100", mutate: func(e *Employee) {
			e.LearningPath[1].Progress = 101
		}, wantErr: ErrProgressOutOfRange},
		{name: "completed below 100", mutate: func(e *Employee) {
			e.LearningPath[0].Progress = 90
		}, wantErr: ErrStatusMismatch},
		{name: "not started with progress", mutate: func(e *Employee) {
			e.LearningPath[2].Progress = 5
		}, wantErr: ErrStatusMismatch},
		{name: "unknown status", mutate: func(e *Employee) {
			e.LearningPath[0].Status = "done"
		}, wantErr: ErrInvalidItemStatus},
		{name: "unknown type", mutate: func(e *Employee) {
			e.LearningPath[0].Type = "video"
		}, wantErr: ErrInvalidItemType},
		{name: "dangling prerequisite", mutate: func(e *Employee) {
			e.LearningPath[2].Prerequisite = "missing"
		}, wantErr: ErrUnknownPrereq},
		{name: "cycle", mutate: func(e *Employee) {
			e.LearningPath[1].Prerequisite = "c"
		}, wantErr: ErrPrereqCycle},
		{name: "self reference", mutate: func(e *Employee) {
			e.LearningPath[0].Prerequisite = "a"
		}, wantErr: ErrPrereqCycle},
		{name: "score out of range", mutate: func(e *Employee) {
			e.AssessmentScores["React"] = 120
		}, wantErr: ErrScoreOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := sampleEmployees()[0]
			tt.mutate(e)
			err := ValidatePath(e)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	e := sampleEmployees()[0]
	c := e.Clone()
	c.LearningPath[0].Progress = 0
	c.AssessmentScores["React"] = 0
	if e.LearningPath[0].Progress != 100 || e.AssessmentScores["React"] != 65 {
		t.Fatal("clone shares state with original")
	}
}
