package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// SessionSource は現在のセッションを返します。
type SessionSource interface {
	Current(ctx context.Context) (*session.Session, error)
}

const (
	defaultRecommendations = 4
	atRiskThreshold        = 40

	gapWeight   = 3.0
	knownWeight = 1.0
)

// Service はロール別ダッシュボードのビューを組み立てます。
type Service struct {
	sessions  SessionSource
	users     user.UseCase
	employees employee.UseCase
	catalog   catalog.UseCase
	clock     Clock
}

// UseCase はダッシュボードユースケースの公開インターフェースです。
type UseCase interface {
	LearnerOverview(ctx context.Context) (*LearnerOverview, error)
	LearningPath(ctx context.Context) (*LearningPathView, error)
	Tracker(ctx context.Context) (*TrackerView, error)
	Recommendations(ctx context.Context, in RecommendationsInput) (*RecommendationsView, error)
	TeamMembers(ctx context.Context) (*TeamView, error)
	ManagerOverview(ctx context.Context) (*ManagerOverview, error)
	AdminOverview(ctx context.Context) (*AdminOverview, error)
	UserManagement(ctx context.Context, in UserManagementInput) (*UserManagementView, error)
	TeamHierarchy(ctx context.Context) ([]TeamNode, error)
}

// NewService は Service を生成します。
func NewService(sessions SessionSource, users user.UseCase, employees employee.UseCase, cat catalog.UseCase, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{sessions: sessions, users: users, employees: employees, catalog: cat, clock: clock}
}

// LearnerOverview はログイン中ユーザー自身の学習概要を返します。
func (s *Service) LearnerOverview(ctx context.Context) (*LearnerOverview, error) {
	emp, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	upNext := emp.LearningPath
	if len(upNext) > 4 {
		upNext = upNext[:4]
	}

	return &LearnerOverview{
		Profile:         emp,
		Stages:          emp.Stages(),
		OverallProgress: emp.OverallProgress(),
		Counts:          emp.CountByStatus(),
		SkillGaps:       emp.SkillGaps(employee.LearnerGapThreshold),
		UpNext:          upNext,
	}, nil
}

// LearningPath は前提条件を解決した学習パスを返します。
func (s *Service) LearningPath(ctx context.Context) (*LearningPathView, error) {
	emp, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PathEntry, 0, len(emp.LearningPath))
	for _, it := range emp.LearningPath {
		items = append(items, PathEntry{Item: it, PrerequisiteTitle: emp.PrerequisiteTitle(it)})
	}
	return &LearningPathView{Username: emp.Username, Items: items, Counts: emp.CountByStatus()}, nil
}

// Tracker は進捗トラッカーを返します。
func (s *Service) Tracker(ctx context.Context) (*TrackerView, error) {
	emp, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	var inProgress []employee.PathItem
	for _, it := range emp.LearningPath {
		if it.Status == employee.StatusInProgress {
			inProgress = append(inProgress, it)
		}
	}

	return &TrackerView{
		Username:        emp.Username,
		OverallProgress: emp.OverallProgress(),
		Risk:            emp.RiskLevel(),
		RemainingHours:  emp.RemainingHours(),
		Counts:          emp.CountByStatus(),
		InProgress:      inProgress,
	}, nil
}

// Recommendations は未修了コースをスキルギャップ・既存スキル・評価で順位付けします。
func (s *Service) Recommendations(ctx context.Context, in RecommendationsInput) (*RecommendationsView, error) {
	emp, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultRecommendations
	}

	courses, err := s.catalog.ListCourses(ctx, catalog.ListCoursesInput{})
	if err != nil {
		return nil, err
	}

	gaps := emp.SkillGaps(employee.LearnerGapThreshold)
	gapSet := toSet(gaps)
	knownSet := toSet(emp.Skills)
	completed := toSet(emp.CompletedCourses)

	var recs []Recommendation
	for _, c := range courses {
		if _, done := completed[c.ID]; done {
			continue
		}
		rec := Recommendation{Course: c}
		for _, skill := range c.Skills {
			if _, ok := gapSet[skill]; ok {
				rec.GapSkills = append(rec.GapSkills, skill)
			}
			if _, ok := knownSet[skill]; ok {
				rec.KnownSkills = append(rec.KnownSkills, skill)
			}
		}
		rec.Relevance = gapWeight*float64(len(rec.GapSkills)) + knownWeight*float64(len(rec.KnownSkills)) + c.Rating
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Relevance > recs[j].Relevance
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}

	var hours float64
	for i, r := range recs {
		if i >= 3 {
			break
		}
		hours += r.Course.EstimatedHours
	}

	return &RecommendationsView{SkillGaps: gaps, Items: recs, TopThreeHours: hours}, nil
}

// TeamMembers はロールに応じたチームメンバーを返します。
// 社員は自分のマネージャーと同僚、マネージャーは直属の部下、管理者は空です。
func (s *Service) TeamMembers(ctx context.Context) (*TeamView, error) {
	current, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	switch current.Role {
	case user.RoleEmployee:
		if current.Manager == "" {
			return &TeamView{}, nil
		}
		mgr, err := s.users.GetUser(ctx, user.GetUserInput{Username: current.Manager})
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return &TeamView{}, nil
			}
			return nil, err
		}
		var colleagues []string
		for _, u := range mgr.Employees {
			if u != current.Username {
				colleagues = append(colleagues, u)
			}
		}
		members, err := s.summaries(ctx, employee.ListEmployeesInput{Usernames: nonNil(colleagues)})
		if err != nil {
			return nil, err
		}
		return &TeamView{Manager: mgr, Members: members}, nil
	case user.RoleManager:
		members, err := s.summaries(ctx, employee.ListEmployeesInput{Usernames: nonNil(current.Employees)})
		if err != nil {
			return nil, err
		}
		return &TeamView{Members: members}, nil
	default:
		return &TeamView{}, nil
	}
}

// ManagerOverview は直属の部下の進捗を集計します。
func (s *Service) ManagerOverview(ctx context.Context) (*ManagerOverview, error) {
	current, err := s.requireRole(ctx, user.RoleManager)
	if err != nil {
		return nil, err
	}

	team, err := s.listAll(ctx, employee.ListEmployeesInput{Usernames: nonNil(current.Employees)})
	if err != nil {
		return nil, err
	}

	out := &ManagerOverview{
		TeamSize: len(team),
		Distribution: []ProgressBucket{
			{Label: "80-100%", Min: 80, Max: 100},
			{Label: "60-79%", Min: 60, Max: 80},
			{Label: "40-59%", Min: 40, Max: 60},
			{Label: "0-39%", Min: 0, Max: 40},
		},
	}

	now := s.clock.Now()
	var total float64
	for _, emp := range team {
		p := emp.OverallProgress()
		total += p
		out.CompletedItems += emp.CountByStatus().Completed
		if p < atRiskThreshold {
			out.AtRisk++
		}
		for i := range out.Distribution {
			b := &out.Distribution[i]
			if p >= b.Min && (p < b.Max || b.Max == 100) {
				b.Count++
				break
			}
		}
		out.Members = append(out.Members, summarize(emp, now))
	}
	if len(team) > 0 {
		out.AverageProgress = total / float64(len(team))
	}
	return out, nil
}

// AdminOverview は組織全体の統計を返します。
func (s *Service) AdminOverview(ctx context.Context) (*AdminOverview, error) {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	all, err := s.listAll(ctx, employee.ListEmployeesInput{})
	if err != nil {
		return nil, err
	}
	managers, err := s.users.Managers(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.employees.GroupByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.catalog.MonthlyTrend(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &AdminOverview{
		TotalEmployees: len(all),
		TotalManagers:  len(managers),
		Trend:          trend,
	}

	var ratio float64
	for _, emp := range all {
		if emp.IsActive(now, employee.ActiveWindow) {
			out.ActiveUsers++
		}
		ratio += emp.CompletionRatio()
	}
	if len(all) > 0 {
		out.CompletionRate = ratio / float64(len(all)) * 100
	}

	for _, g := range groups {
		var counts employee.StatusCounts
		for _, emp := range g.Employees {
			c := emp.CountByStatus()
			counts.Completed += c.Completed
			counts.InProgress += c.InProgress
			counts.NotStarted += c.NotStarted
		}
		out.Departments = append(out.Departments, DepartmentProgress{Department: g.Department, Counts: counts})
	}

	out.Skills = skillAverages(all)
	return out, nil
}

// UserManagement は部署と検索語で絞り込んだ社員一覧を返します。
func (s *Service) UserManagement(ctx context.Context, in UserManagementInput) (*UserManagementView, error) {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	departments, err := s.employees.Departments(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.summaries(ctx, employee.ListEmployeesInput{Department: in.Department, Search: in.Search})
	if err != nil {
		return nil, err
	}
	return &UserManagementView{Departments: departments, Members: members}, nil
}

// TeamHierarchy はマネージャーごとの直属の部下を返します。
func (s *Service) TeamHierarchy(ctx context.Context) ([]TeamNode, error) {
	if _, err := s.requireRole(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	managers, err := s.users.Managers(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]TeamNode, 0, len(managers))
	for _, m := range managers {
		reports, err := s.summaries(ctx, employee.ListEmployeesInput{Usernames: nonNil(m.Employees)})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, TeamNode{Manager: m.Clone(), Reports: reports})
	}
	return nodes, nil
}

func (s *Service) currentUser(ctx context.Context) (*user.User, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	u := sess.User.Clone()
	return &u, nil
}

func (s *Service) requireRole(ctx context.Context, role user.Role) (*user.User, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, fmt.Errorf("%s: %w", u.Role, ErrForbidden)
	}
	return u, nil
}

func (s *Service) currentProfile(ctx context.Context) (*employee.Employee, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	emp, err := s.employees.GetProfile(ctx, employee.GetProfileInput{Username: u.Username})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("%s: %w", u.Username, ErrProfileNotFound)
		}
		return nil, err
	}
	return emp, nil
}

// listAll はページトークンを辿って全件を集めます。
func (s *Service) listAll(ctx context.Context, in employee.ListEmployeesInput) ([]*employee.Employee, error) {
	var out []*employee.Employee
	for {
		res, err := s.employees.ListEmployees(ctx, in)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Employees...)
		if res.NextPageToken == "" {
			return out, nil
		}
		in.PageToken = res.NextPageToken
	}
}

func (s *Service) summaries(ctx context.Context, in employee.ListEmployeesInput) ([]MemberSummary, error) {
	list, err := s.listAll(ctx, in)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	out := make([]MemberSummary, 0, len(list))
	for _, emp := range list {
		out = append(out, summarize(emp, now))
	}
	return out, nil
}

func summarize(emp *employee.Employee, now time.Time) MemberSummary {
	skills := emp.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	var current []employee.PathItem
	for _, it := range emp.LearningPath {
		if it.Status == employee.StatusInProgress && len(current) < 2 {
			current = append(current, it)
		}
	}
	return MemberSummary{
		Username:        emp.Username,
		FullName:        emp.FullName,
		Department:      emp.Department,
		Email:           emp.Email,
		Skills:          append([]string(nil), skills...),
		OverallProgress: emp.OverallProgress(),
		Counts:          emp.CountByStatus(),
		Risk:            emp.RiskLevel(),
		Active:          emp.IsActive(now, employee.ActiveWindow),
		CurrentItems:    current,
	}
}

func skillAverages(list []*employee.Employee) []SkillAverage {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, emp := range list {
		for skill, score := range emp.AssessmentScores {
			sums[skill] += score
			counts[skill]++
		}
	}
	out := make([]SkillAverage, 0, len(sums))
	for skill, sum := range sums {
		out = append(out, SkillAverage{Skill: skill, Average: float64(sum) / float64(counts[skill]), Samples: counts[skill]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

// nonNil は空の集合を「絞り込みなし」と区別するために nil を空スライスへ置き換えます。
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
