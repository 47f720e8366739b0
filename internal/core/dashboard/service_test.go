package dashboard

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fixedSession struct {
	sess *session.Session
}

func (f fixedSession) Current(context.Context) (*session.Session, error) {
	if f.sess == nil {
		return nil, session.ErrNoSession
	}
	return f.sess, nil
}

type userRepo struct {
	users []user.User
}

func (r userRepo) FindCredential(context.Context, string) (*user.Credential, error) {
	return nil, user.ErrUserNotFound
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			c := u.Clone()
			return &c, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r userRepo) List(_ context.Context, filter user.ListUsersFilter) ([]*user.User, error) {
	var out []*user.User
	for _, u := range r.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		c := u.Clone()
		out = append(out, &c)
	}
	return out, nil
}

type employeeRepo struct {
	list []*employee.Employee
}

func (r employeeRepo) FindByUsername(_ context.Context, username string) (*employee.Employee, error) {
	for _, e := range r.list {
		if e.Username == username {
			return e.Clone(), nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (r employeeRepo) List(_ context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	var out []*employee.Employee
	for _, e := range r.list {
		if filter.Matches(e) {
			out = append(out, e.Clone())
		}
	}
	page, next := employee.Paginate(out, filter.Offset, filter.Limit)
	return page, next, nil
}

func (r employeeRepo) Departments(context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, e := range r.list {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out, nil
}

type catalogRepo struct {
	courses []*catalog.Course
}

func (r catalogRepo) ListCourses(_ context.Context, filter catalog.ListCoursesFilter) ([]*catalog.Course, error) {
	var out []*catalog.Course
	for _, c := range r.courses {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r catalogRepo) FindCourse(context.Context, string) (*catalog.Course, error) {
	return nil, catalog.ErrCourseNotFound
}

func (r catalogRepo) ListAssessments(context.Context) ([]*catalog.Assessment, error) {
	return nil, nil
}

func (r catalogRepo) FindAssessment(context.Context, string) (*catalog.Assessment, error) {
	return nil, catalog.ErrAssessmentNotFound
}

func (r catalogRepo) MonthlyTrend(context.Context) ([]catalog.MonthlyTrend, error) {
	return []catalog.MonthlyTrend{{Month: "Jan", Completed: 118, Started: 125}}, nil
}

var directory = []user.User{
	{Username: "admin1", Role: user.RoleAdmin, FullName: "Sarah Johnson", Department: "IT Operations"},
	{Username: "manager1", Role: user.RoleManager, FullName: "Michael Chen", Department: "Software Development", Employees: []string{"emp1", "emp2", "emp3"}},
	{Username: "manager2", Role: user.RoleManager, FullName: "Priya Sharma", Department: "Data Analytics", Employees: []string{"emp4", "emp5"}},
	{Username: "emp1", Role: user.RoleEmployee, FullName: "Alex Rodriguez", Department: "Software Development", Manager: "manager1"},
	{Username: "emp2", Role: user.RoleEmployee, FullName: "Emily Davis", Department: "Software Development", Manager: "manager1"},
	{Username: "emp3", Role: user.RoleEmployee, FullName: "James Wilson", Department: "Software Development", Manager: "manager1"},
	{Username: "emp4", Role: user.RoleEmployee, FullName: "Lisa Wang", Department: "Data Analytics", Manager: "manager2"},
	{Username: "emp5", Role: user.RoleEmployee, FullName: "David Kumar", Department: "Data Analytics", Manager: "manager2"},
}

func path(progress ...int) []employee.PathItem {
	items := make([]employee.PathItem, 0, len(progress))
	for i, p := range progress {
		status := employee.StatusInProgress
		switch p {
		case 0:
			status = employee.StatusNotStarted
		case 100:
			status = employee.StatusCompleted
		}
		items = append(items, employee.PathItem{
			ID:             string(rune('a' + i)),
			Title:          "Item " + string(rune('A'+i)),
			Type:           employee.ItemTypeCourse,
			EstimatedHours: 10,
			Status:         status,
			Progress:       p,
		})
	}
	return items
}

func profiles() []*employee.Employee {
	active := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return []*employee.Employee{
		{
			Username: "emp1", FullName: "Alex Rodriguez", Department: "Software Development",
			Skills:           []string{"JavaScript", "React", "Node.js"},
			CompletedCourses: []string{"js-fundamentals", "react-basics"},
			AssessmentScores: map[string]int{"JavaScript": 78, "React": 65, "Node.js": 45},
			LearningPath:     path(100, 100, 60, 30, 0, 0),
			LastActive:       active,
		},
		{
			Username: "emp2", FullName: "Emily Davis", Department: "Software Development",
			AssessmentScores: map[string]int{"Python": 85, "Django": 72, "PostgreSQL": 68, "System Design": 55},
			LearningPath:     path(100, 100, 75, 40, 0),
			LastActive:       active.Add(-24 * time.Hour),
		},
		{
			Username: "emp3", FullName: "James Wilson", Department: "Software Development",
			AssessmentScores: map[string]int{"Java": 70, "Spring Boot": 58, "MySQL": 62},
			LearningPath:     path(100, 100, 45, 0),
			LastActive:       active.Add(-48 * time.Hour),
		},
		{
			Username: "emp4", FullName: "Lisa Wang", Department: "Data Analytics",
			AssessmentScores: map[string]int{"Python": 88, "SQL": 92},
			LearningPath:     path(100, 100, 70, 25, 0),
			LastActive:       active,
		},
		{
			Username: "emp5", FullName: "David Kumar", Department: "Data Analytics",
			AssessmentScores: map[string]int{"SQL": 68},
			LearningPath:     path(100, 100, 80, 35, 0),
			LastActive:       active.Add(-30 * 24 * time.Hour),
		},
	}
}

func courses() []*catalog.Course {
	return []*catalog.Course{
		{ID: "js-fundamentals", EstimatedHours: 16, Level: catalog.LevelBeginner, Skills: []string{"JavaScript"}, Rating: 4.5},
		{ID: "react-basics", EstimatedHours: 20, Level: catalog.LevelBeginner, Skills: []string{"React"}, Rating: 4.7},
		{ID: "advanced-react", EstimatedHours: 24, Level: catalog.LevelAdvanced, Skills: []string{"React", "Hooks"}, Rating: 4.8},
		{ID: "node-backend", EstimatedHours: 32, Level: catalog.LevelIntermediate, Skills: []string{"Node.js", "Express"}, Rating: 4.6},
		{ID: "python-data-analysis", EstimatedHours: 28, Level: catalog.LevelIntermediate, Skills: []string{"Python"}, Rating: 4.9},
		{ID: "machine-learning", EstimatedHours: 35, Level: catalog.LevelIntermediate, Skills: []string{"Machine Learning"}, Rating: 4.7},
		{ID: "system-design", EstimatedHours: 28, Level: catalog.LevelAdvanced, Skills: []string{"System Design"}, Rating: 4.8},
	}
}

func newTestService(username string) *Service {
	var src fixedSession
	for _, u := range directory {
		if u.Username == username {
			src.sess = &session.Session{ID: "session-1", User: u.Clone()}
		}
	}
	users := user.NewService(userRepo{users: directory})
	employees := employee.NewService(employeeRepo{list: profiles()}, nil)
	cat := catalog.NewService(catalogRepo{courses: courses()}, nil)
	return NewService(src, users, employees, cat, stubClock{now: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)})
}

func TestLearnerViews(t *testing.T) {
	t.Parallel()

	svc := newTestService("emp1")
	ctx := context.Background()

	overview, err := svc.LearnerOverview(ctx)
	if err != nil {
		t.Fatalf("LearnerOverview returned error: %v", err)
	}
	if !almostEqual(overview.OverallProgress, 290.0/6.0) {
		t.Fatalf("OverallProgress = %f", overview.OverallProgress)
	}
	if !reflect.DeepEqual(overview.SkillGaps, []string{"Node.js", "React"}) {
		t.Fatalf("SkillGaps = %v", overview.SkillGaps)
	}
	if len(overview.UpNext) != 4 {
		t.Fatalf("expected 4 up-next items, got %d", len(overview.UpNext))
	}
	if want := (employee.StatusCounts{Completed: 2, InProgress: 2, NotStarted: 2}); overview.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", overview.Counts, want)
	}
	if len(overview.Stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(overview.Stages))
	}
	if overview.Stages[3].Status != employee.StageCurrent {
		t.Fatalf("stage 4 status = %s", overview.Stages[3].Status)
	}

	pathView, err := svc.LearningPath(ctx)
	if err != nil {
		t.Fatalf("LearningPath returned error: %v", err)
	}
	if len(pathView.Items) != 6 {
		t.Fatalf("expected 6 path items, got %d", len(pathView.Items))
	}

	tracker, err := svc.Tracker(ctx)
	if err != nil {
		t.Fatalf("Tracker returned error: %v", err)
	}
	if tracker.Risk != employee.RiskMedium {
		t.Fatalf("Risk = %s", tracker.Risk)
	}
	if len(tracker.InProgress) != 2 {
		t.Fatalf("expected 2 in-progress items, got %d", len(tracker.InProgress))
	}
	if !almostEqual(tracker.RemainingHours, 31.0) {
		t.Fatalf("RemainingHours = %f", tracker.RemainingHours)
	}
}

func TestRecommendationsAreDeterministic(t *testing.T) {
	t.Parallel()

	svc := newTestService("emp1")
	view, err := svc.Recommendations(context.Background(), RecommendationsInput{})
	if err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}

	ids := make([]string, 0, len(view.Items))
	for _, r := range view.Items {
		ids = append(ids, r.Course.ID)
	}
	if want := []string{"advanced-react", "node-backend", "python-data-analysis", "system-design"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	if !reflect.DeepEqual(view.Items[0].GapSkills, []string{"React"}) {
		t.Fatalf("GapSkills = %v", view.Items[0].GapSkills)
	}
	if !almostEqual(view.TopThreeHours, 84.0) {
		t.Fatalf("TopThreeHours = %f", view.TopThreeHours)
	}

	again, err := svc.Recommendations(context.Background(), RecommendationsInput{Limit: 2})
	if err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}
	if len(again.Items) != 2 || again.Items[0].Course.ID != "advanced-react" {
		t.Fatalf("unexpected limited recommendations: %+v", again.Items)
	}
}

func TestLearnerOverviewWithoutProfile(t *testing.T) {
	t.Parallel()

	_, err := newTestService("admin1").LearnerOverview(context.Background())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestViewsRequireSession(t *testing.T) {
	t.Parallel()

	svc := newTestService("")
	if _, err := svc.LearnerOverview(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := svc.AdminOverview(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestTeamMembers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	asEmployee, err := newTestService("emp2").TeamMembers(ctx)
	if err != nil {
		t.Fatalf("TeamMembers returned error: %v", err)
	}
	if asEmployee.Manager == nil || asEmployee.Manager.Username != "manager1" {
		t.Fatalf("unexpected manager: %+v", asEmployee.Manager)
	}
	if got := usernames(asEmployee.Members); !reflect.DeepEqual(got, []string{"emp1", "emp3"}) {
		t.Fatalf("members = %v", got)
	}

	asManager, err := newTestService("manager2").TeamMembers(ctx)
	if err != nil {
		t.Fatalf("TeamMembers returned error: %v", err)
	}
	if asManager.Manager != nil {
		t.Fatalf("manager view must not carry a manager, got %+v", asManager.Manager)
	}
	if got := usernames(asManager.Members); !reflect.DeepEqual(got, []string{"emp4", "emp5"}) {
		t.Fatalf("members = %v", got)
	}

	asAdmin, err := newTestService("admin1").TeamMembers(ctx)
	if err != nil {
		t.Fatalf("TeamMembers returned error: %v", err)
	}
	if len(asAdmin.Members) != 0 {
		t.Fatalf("expected no members for admin, got %v", usernames(asAdmin.Members))
	}
}

func TestManagerOverview(t *testing.T) {
	t.Parallel()

	view, err := newTestService("manager1").ManagerOverview(context.Background())
	if err != nil {
		t.Fatalf("ManagerOverview returned error: %v", err)
	}

	if view.TeamSize != 3 || view.CompletedItems != 6 || view.AtRisk != 0 {
		t.Fatalf("unexpected totals: size=%d completed=%d atRisk=%d", view.TeamSize, view.CompletedItems, view.AtRisk)
	}
	want := (290.0/6.0 + 315.0/5.0 + 245.0/4.0) / 3.0
	if !almostEqual(view.AverageProgress, want) {
		t.Fatalf("AverageProgress = %f, want %f", view.AverageProgress, want)
	}

	counts := map[string]int{}
	for _, b := range view.Distribution {
		counts[b.Label] = b.Count
	}
	if wantCounts := map[string]int{"80-100%": 0, "60-79%": 2, "40-59%": 1, "0-39%": 0}; !reflect.DeepEqual(counts, wantCounts) {
		t.Fatalf("distribution = %v, want %v", counts, wantCounts)
	}

	risks := map[string]employee.RiskLevel{}
	for _, m := range view.Members {
		risks[m.Username] = m.Risk
	}
	if risks["emp1"] != employee.RiskMedium || risks["emp2"] != employee.RiskLow || risks["emp3"] != employee.RiskLow {
		t.Fatalf("unexpected risks: %v", risks)
	}
}

func TestAdminOverview(t *testing.T) {
	t.Parallel()

	view, err := newTestService("admin1").AdminOverview(context.Background())
	if err != nil {
		t.Fatalf("AdminOverview returned error: %v", err)
	}

	if view.TotalEmployees != 5 || view.TotalManagers != 2 || view.ActiveUsers != 4 {
		t.Fatalf("unexpected totals: employees=%d managers=%d active=%d", view.TotalEmployees, view.TotalManagers, view.ActiveUsers)
	}
	want := (2.0/6.0 + 2.0/5.0 + 2.0/4.0 + 2.0/5.0 + 2.0/5.0) / 5.0 * 100
	if !almostEqual(view.CompletionRate, want) {
		t.Fatalf("completion rate %f, want %f", view.CompletionRate, want)
	}

	if len(view.Departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(view.Departments))
	}
	if view.Departments[0].Department != "Software Development" {
		t.Fatalf("first department = %s", view.Departments[0].Department)
	}
	if wantCounts := (employee.StatusCounts{Completed: 6, InProgress: 5, NotStarted: 4}); view.Departments[0].Counts != wantCounts {
		t.Fatalf("department counts = %+v, want %+v", view.Departments[0].Counts, wantCounts)
	}

	var python SkillAverage
	for _, s := range view.Skills {
		if s.Skill == "Python" {
			python = s
		}
	}
	if !almostEqual(python.Average, 86.5) || python.Samples != 2 {
		t.Fatalf("unexpected Python average: %+v", python)
	}
	if len(view.Trend) != 1 {
		t.Fatalf("expected 1 trend entry, got %d", len(view.Trend))
	}
}

func TestUserManagementAndHierarchy(t *testing.T) {
	t.Parallel()

	svc := newTestService("admin1")
	ctx := context.Background()

	view, err := svc.UserManagement(ctx, UserManagementInput{Department: "Data Analytics"})
	if err != nil {
		t.Fatalf("UserManagement returned error: %v", err)
	}
	if want := []string{"Software Development", "Data Analytics"}; !reflect.DeepEqual(view.Departments, want) {
		t.Fatalf("departments = %v, want %v", view.Departments, want)
	}
	if got := usernames(view.Members); !reflect.DeepEqual(got, []string{"emp4", "emp5"}) {
		t.Fatalf("members = %v", got)
	}
	if view.Members[1].Active {
		t.Fatal("emp5 must be inactive")
	}

	view, err = svc.UserManagement(ctx, UserManagementInput{Department: "all", Search: "wil"})
	if err != nil {
		t.Fatalf("UserManagement returned error: %v", err)
	}
	if got := usernames(view.Members); !reflect.DeepEqual(got, []string{"emp3"}) {
		t.Fatalf("search result = %v", got)
	}

	nodes, err := svc.TeamHierarchy(ctx)
	if err != nil {
		t.Fatalf("TeamHierarchy returned error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(nodes))
	}
	if nodes[0].Manager.Username != "manager1" {
		t.Fatalf("first manager = %s", nodes[0].Manager.Username)
	}
	if got := usernames(nodes[0].Reports); !reflect.DeepEqual(got, []string{"emp1", "emp2", "emp3"}) {
		t.Fatalf("manager1 reports = %v", got)
	}
	if got := usernames(nodes[1].Reports); !reflect.DeepEqual(got, []string{"emp4", "emp5"}) {
		t.Fatalf("manager2 reports = %v", got)
	}
}

func TestRoleViolations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	emp := newTestService("emp1")
	mgr := newTestService("manager1")

	checks := map[string]error{}
	_, checks["employee ManagerOverview"] = emp.ManagerOverview(ctx)
	_, checks["manager AdminOverview"] = mgr.AdminOverview(ctx)
	_, checks["employee UserManagement"] = emp.UserManagement(ctx, UserManagementInput{})
	_, checks["manager TeamHierarchy"] = mgr.TeamHierarchy(ctx)

	for name, err := range checks {
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", name, err)
		}
	}
}

func usernames(list []MemberSummary) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.Username)
	}
	return out
}

func almostEqual(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
